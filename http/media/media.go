package media

import (
	"fmt"
	"strings"
)

// Well-known media types, in the forms responses send them.
const (
	JSON     = "application/json"
	JSONUTF8 = "application/json; charset=UTF-8"
	HTML     = "text/html; charset=utf-8"
	Text     = "text/plain; charset=utf-8"
	XML      = "application/xml"
)

// A Handler serializes structured values into the bytes carried for a
// media type.
type Handler interface {
	Serialize(v any, contentType string) ([]byte, error)
}

// Handlers maps media types to the Handler serializing each.
//
// A registry is read-mostly: bind everything at startup, then share it
// across in-flight responses. Register and Remove are not safe to call
// concurrently with lookups.
type Handlers struct {
	byType map[string]Handler
}

// NewHandlers constructs a *Handlers with JSONHandler bound for JSON,
// ready for Register calls to extend.
func NewHandlers() *Handlers {
	h := &Handlers{byType: make(map[string]Handler)}
	h.Register(JSON, JSONHandler{})
	return h
}

// Register binds handler as the serializer for mediaType,
// replacing any handler already bound.
// Parameters are stripped, so JSON and JSONUTF8 name the same binding.
func (h *Handlers) Register(mediaType string, handler Handler) {
	h.byType[baseType(mediaType)] = handler
}

// Remove unbinds the handler for mediaType;
// removing an unbound type is a no-op.
func (h *Handlers) Remove(mediaType string) {
	delete(h.byType, baseType(mediaType))
}

// FindByMediaType returns the Handler serializing mediaType.
//
// An empty or wildcard "*/*" mediaType falls back to defaultType, and
// parameters are stripped before lookup. A type with no binding returns
// an error wrapping ErrNoHandler.
func (h *Handlers) FindByMediaType(mediaType, defaultType string) (Handler, error) {
	if mediaType == "" || mediaType == "*/*" {
		mediaType = defaultType
	}

	key := baseType(mediaType)
	handler, ok := h.byType[key]
	if !ok {
		return nil, fmt.Errorf("cairn/http/media: %w: %q", ErrNoHandler, key)
	}

	return handler, nil
}

// baseType strips parameters from mediaType, leaving the type/subtype pair.
func baseType(mediaType string) string {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}

	return strings.TrimSpace(mediaType)
}
