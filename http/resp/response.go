package resp

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/cookie"
	"github.com/xy-planning-network/cairn/http/headers"
)

// A Response composes the header and body state of one HTTP response
// ahead of its trip through the transport.
//
// A Response belongs to a single request/response lifecycle and is not
// safe for concurrent use; the *Options behind it is shared and must not
// be mutated while responses are in flight.
type Response struct {
	// Status is the full status line, e.g. "200 OK".
	// Compose one from a bare code with StatusLine.
	Status string

	// Context holds app-specific data riding along with the response.
	// cairn never reads or writes it after construction.
	Context map[string]any

	opts    *Options
	headers *headers.Store
	jar     *cookie.Jar

	text      string
	stream    io.Reader
	streamLen int64

	media any

	// data is the explicit body bytes and the memo slot for serialized
	// media; fromMedia records which of the two it holds.
	data      []byte
	fromMedia bool
}

// NewResponse constructs a *Response against opts,
// with status "200 OK" and no headers, cookies, or body.
// A nil opts uses NewOptions defaults.
func NewResponse(opts *Options) *Response {
	if opts == nil {
		opts = NewOptions()
	}

	return &Response{
		Status:  StatusLine(http.StatusOK),
		Context: make(map[string]any),
		opts:    opts,
		headers: headers.New(),
	}
}

// Headers returns the live header store for direct and typed access.
func (r *Response) Headers() *headers.Store { return r.headers }

// SetData sets the body to explicit bytes,
// taking precedence over text and media at export.
// A nil b clears explicit bytes.
func (r *Response) SetData(b []byte) {
	r.data = b
	r.fromMedia = false
}

// SetText sets the body to a string, encoded as UTF-8 at export.
// An empty string means no text body.
func (r *Response) SetText(text string) { r.text = text }

// SetStream hands the body off to a reader the transport drains,
// for content too large or too slow to buffer.
//
// A known contentLength is set on the Content-Length header so agents
// see the size up front; pass a negative contentLength when unknown and
// the transport will pick its own strategy, such as chunking.
func (r *Response) SetStream(stream io.Reader, contentLength int64) {
	r.stream = stream
	r.streamLen = contentLength
	if contentLength >= 0 {
		r.headers.SetContentLength(contentLength)
	}
}

// Stream returns the reader set by SetStream and its length,
// -1 when the length is unknown, nil when no stream is set.
func (r *Response) Stream() (io.Reader, int64) {
	if r.stream == nil {
		return nil, -1
	}

	return r.stream, r.streamLen
}

// SetMedia sets the body to a structured value serialized on first read.
//
// SetMedia drops any explicit or previously serialized bytes, so stale
// output never leaks into the new value. A nil v clears the media body.
func (r *Response) SetMedia(v any) {
	r.media = v
	r.data = nil
	r.fromMedia = false
}

// Media returns the structured body value, nil when none is set.
func (r *Response) Media() any { return r.media }

// Data returns the explicit body bytes, or the held media serialized.
//
// Serialization resolves a handler from the response Content-Type,
// first filling that header from the Options default when unset, and
// memoizes the bytes until SetMedia or SetData replaces them. With no
// explicit bytes and no media, Data returns nil with no error.
func (r *Response) Data() ([]byte, error) {
	if r.data != nil {
		return r.data, nil
	}

	if r.media == nil {
		return nil, nil
	}

	if !r.headers.Exists(headers.NameContentType) {
		r.headers.SetContentType(r.opts.DefaultMediaType)
	}

	contentType, _ := r.headers.ContentType()
	handler, err := r.opts.Handlers.FindByMediaType(contentType, r.opts.DefaultMediaType)
	if err != nil {
		return nil, err
	}

	b, err := handler.Serialize(r.media, contentType)
	if err != nil {
		return nil, err
	}

	r.data = b
	r.fromMedia = true
	return r.data, nil
}

// BodyBytes resolves the bytes the transport will carry:
// explicit data first, then text encoded as UTF-8, then serialized media.
// A response with none of the three returns nil with no error.
func (r *Response) BodyBytes() ([]byte, error) {
	if r.data != nil && !r.fromMedia {
		return r.data, nil
	}

	if r.text != "" {
		return []byte(r.text), nil
	}

	return r.Data()
}

// SetCookie builds or replaces the response cookie for name,
// with the Secure attribute defaulting to the Options policy.
// See [cookie.Jar.Set] for validation and the available opts.
func (r *Response) SetCookie(name, value string, opts ...cookie.Opt) error {
	return r.cookies().Set(name, value, opts...)
}

// SetSignedCookie is SetCookie with value signed through codec first.
func (r *Response) SetSignedCookie(codec *cookie.Codec, name, value string, opts ...cookie.Opt) error {
	return r.cookies().SetSigned(codec, name, value, opts...)
}

// UnsetCookie instructs the receiving agent to drop its cookie for name.
// See [cookie.Jar.Unset] for the path and domain caveat.
func (r *Response) UnsetCookie(name string) error {
	return r.cookies().Unset(name)
}

// Cookies returns the response cookies in the order they were set.
func (r *Response) Cookies() []cookie.Cookie {
	if r.jar == nil {
		return nil
	}

	return r.jar.All()
}

func (r *Response) cookies() *cookie.Jar {
	if r.jar == nil {
		r.jar = cookie.NewJar(r.opts.SecureCookiesByDefault)
	}

	return r.jar
}

// statusCode parses the numeric code leading Status.
func (r *Response) statusCode() (int, error) {
	s := r.Status
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	code, err := strconv.Atoi(s)
	if err != nil || code < 100 || code > 999 {
		return 0, fmt.Errorf("cairn/http/resp: %w: status line %q", cairn.ErrNotValid, r.Status)
	}

	return code, nil
}

// StatusLine renders code in the full status-line form Status carries,
// e.g. StatusLine(404) returns "404 Not Found".
// A code net/http has no text for renders bare.
func StatusLine(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return strconv.Itoa(code)
	}

	return strconv.Itoa(code) + " " + text
}
