package resp

import (
	"mime"
	"strings"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/media"
)

// Options configures the Responses constructed against it.
//
// An Options is read-mostly: build one at startup, hand it to every
// NewResponse, and leave it alone while responses are in flight.
type Options struct {
	// SecureCookiesByDefault is the Secure attribute policy for cookies
	// set without an explicit cookie.WithSecure.
	// Switch off in development environments without HTTPS.
	SecureCookiesByDefault bool

	// DefaultMediaType fills in Content-Type at export when no handler or
	// middleware set one, and resolves the serializer for media bodies.
	DefaultMediaType string

	// Handlers resolves media types to body serializers.
	Handlers *media.Handlers

	// StaticMediaTypes maps dot-prefixed file extensions to media types
	// for responses serving static assets.
	StaticMediaTypes map[string]string
}

// NewOptions constructs *Options with production defaults:
// secure cookies, JSON as the default media type, the stock media.Handlers
// registry, and a static types table seeded from the platform mime database.
func NewOptions() *Options {
	return &Options{
		SecureCookiesByDefault: true,
		DefaultMediaType:       media.JSONUTF8,
		Handlers:               media.NewHandlers(),
		StaticMediaTypes:       staticMediaTypes(),
	}
}

// OptionsFromEnv is NewOptions with overrides read from the environment:
//
//	ENVIRONMENT                # secure cookies switch off under development or testing
//	CAIRN_SECURE_COOKIES       # explicit override of the cookie policy
//	CAIRN_DEFAULT_MEDIA_TYPE   # media type standing in for Content-Type
func OptionsFromEnv() *Options {
	env := cairn.EnvVarOrEnv("ENVIRONMENT", cairn.Production)

	o := NewOptions()
	o.SecureCookiesByDefault = cairn.EnvVarOrBool("CAIRN_SECURE_COOKIES", !(env.IsDevelopment() || env.IsTesting()))
	o.DefaultMediaType = cairn.EnvVarOrString("CAIRN_DEFAULT_MEDIA_TYPE", o.DefaultMediaType)
	return o
}

// MediaTypeForExtension returns the media type for a file extension,
// consulting StaticMediaTypes then the platform mime database.
// The extension may arrive with or without its leading dot.
func (o *Options) MediaTypeForExtension(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	ext = strings.ToLower(ext)

	if t, ok := o.StaticMediaTypes[ext]; ok {
		return t, true
	}

	if t := mime.TypeByExtension(ext); t != "" {
		return t, true
	}

	return "", false
}

// staticExtensions carries the web-asset types worth serving even when the
// platform mime database is missing or sparse.
var staticExtensions = map[string]string{
	".css":   "text/css; charset=utf-8",
	".gif":   "image/gif",
	".htm":   "text/html; charset=utf-8",
	".html":  "text/html; charset=utf-8",
	".ico":   "image/vnd.microsoft.icon",
	".jpeg":  "image/jpeg",
	".jpg":   "image/jpeg",
	".js":    "text/javascript; charset=utf-8",
	".json":  "application/json",
	".pdf":   "application/pdf",
	".png":   "image/png",
	".svg":   "image/svg+xml",
	".txt":   "text/plain; charset=utf-8",
	".wasm":  "application/wasm",
	".webp":  "image/webp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".xml":   "application/xml",
}

// staticMediaTypes seeds a fresh extension table,
// preferring the platform mime database where it has an answer.
func staticMediaTypes() map[string]string {
	m := make(map[string]string, len(staticExtensions))
	for ext, fallback := range staticExtensions {
		if t := mime.TypeByExtension(ext); t != "" {
			m[ext] = t
			continue
		}

		m[ext] = fallback
	}

	return m
}
