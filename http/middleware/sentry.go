package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/cairn"
)

// ReportPanic recovers panics within the wrapped handler,
// reporting them to Sentry before the response closes.
//
// In development, NoopAdapter returns so panics surface directly.
func ReportPanic(env cairn.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(h)
	}
}
