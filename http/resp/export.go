package resp

import (
	"fmt"
	"io"
	"net/http"

	"github.com/xy-planning-network/cairn/http/headers"
)

// TransportHeaders freezes the response headers into the ordered pair
// sequence the transport boundary expects, all names lower-case.
//
// When Content-Type is unset and defaultMediaType is not empty, the
// header is filled in before the snapshot so a serializable body never
// ships without one. After the base headers, one set-cookie pair is
// appended per response cookie, in the order the cookies were set.
//
// Absent intervening writes, repeated calls return identical output.
func (r *Response) TransportHeaders(defaultMediaType string) []headers.Pair {
	if defaultMediaType != "" && !r.headers.Exists(headers.NameContentType) {
		r.headers.SetContentType(defaultMediaType)
	}

	pairs := r.headers.Normalized()
	for _, c := range r.Cookies() {
		pairs = append(pairs, headers.Pair{Name: headers.NameSetCookie, Value: c.String()})
	}

	return pairs
}

// Export resolves the body, so media serialization and its Content-Type
// side effect land first, then returns TransportHeaders under the
// Options default media type. Read the resolved body back with
// BodyBytes; the resolution is memoized.
func (r *Response) Export() ([]headers.Pair, error) {
	if _, err := r.BodyBytes(); err != nil {
		return nil, err
	}

	return r.TransportHeaders(r.opts.DefaultMediaType), nil
}

// Apply writes the whole response to w: exported headers, the parsed
// Status code, then the body bytes or the streamed body, in that order.
//
// Failures in status parsing or body resolution surface before anything
// is written, leaving w untouched for an error handler to use.
func (r *Response) Apply(w http.ResponseWriter) error {
	code, err := r.statusCode()
	if err != nil {
		return err
	}

	body, err := r.BodyBytes()
	if err != nil {
		return err
	}

	for _, p := range r.TransportHeaders(r.opts.DefaultMediaType) {
		w.Header().Add(p.Name, p.Value)
	}

	w.WriteHeader(code)

	if body != nil {
		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("cairn/http/resp: failed writing body: %s", err)
		}

		return nil
	}

	if r.stream != nil {
		if _, err := io.Copy(w, r.stream); err != nil {
			return fmt.Errorf("cairn/http/resp: failed streaming body: %s", err)
		}
	}

	return nil
}
