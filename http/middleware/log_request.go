package middleware

import (
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/logger"
)

// A LogRequestRecord captures a completed request-response exchange for logging.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Host           string `json:"host,omitempty"`
	ID             string `json:"id,omitempty"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol,omitempty"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// NewLogRequestRecord composes a LogRequestRecord from the request and
// the status and body size its handler responded with.
//
// The value for the "password" query param is masked.
// The IP address and request ID are read from the request context,
// where [InjectIPAddress] and [RequestID] stash them.
func NewLogRequestRecord(r *http.Request, status, bodySize int) LogRequestRecord {
	q := r.URL.Query()
	cairn.Mask(q, "password")

	uri := r.URL.Path
	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	rec := LogRequestRecord{
		BodySize:       bodySize,
		Host:           r.Host,
		Method:         r.Method,
		Path:           r.URL.Path,
		Protocol:       r.Proto,
		Referrer:       r.Referer(),
		ReqContentType: r.Header.Get("Content-Type"),
		Scheme:         r.URL.Scheme,
		Status:         status,
		URI:            uri,
		UserAgent:      r.UserAgent(),
	}

	if id, ok := r.Context().Value(cairn.RequestIDKey).(string); ok {
		rec.ID = id
	}

	if ip, ok := r.Context().Value(cairn.IpAddrKey).(string); ok {
		rec.IPAddr = ip
	}

	return rec
}

// LogRequest logs each completed request using the enclosed implementation
// of logger.Logger, attaching a [LogRequestRecord] as log context.
//
// If ls is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)
			rec := NewLogRequestRecord(r, m.Code, int(m.Written))

			strs := []string{rec.Method, rec.URI}
			if rec.IPAddr != "" {
				strs = append([]string{rec.IPAddr}, strs...)
			}

			ls.Info(strings.Join(strs, " "), &logger.LogContext{Data: map[string]any{
				cairn.LogKindKey: cairn.HTTPLogKind,
				"request":        rec,
			}})
		})
	}
}
