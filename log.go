package cairn

import "net/url"

const (
	// LogKindKey labels the subsystem a log line originates from.
	LogKindKey = "kind"

	// LogMaskVal hides sensitive values in log messages.
	LogMaskVal = "xxxxxx"
)

// The log kinds stored under LogKindKey.
const (
	AppLogKind  = "app"
	HTTPLogKind = "http"
)

// Mask replaces the values under key in vals with [LogMaskVal],
// squashing multiple values down to one.
// Mask leaves vals untouched when key is not present.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals.Set(key, LogMaskVal)
}
