package headers

import (
	"strconv"
	"time"

	"github.com/xy-planning-network/cairn/http/uri"
)

// Canonical names of the well-known headers Store exposes typed accessors for,
// in the lower-case form Normalized exports.
const (
	NameAcceptRanges       = "accept-ranges"
	NameCacheControl       = "cache-control"
	NameContentDisposition = "content-disposition"
	NameContentLength      = "content-length"
	NameContentLocation    = "content-location"
	NameContentRange       = "content-range"
	NameContentType        = "content-type"
	NameETag               = "etag"
	NameExpires            = "expires"
	NameLastModified       = "last-modified"
	NameLink               = "link"
	NameLocation           = "location"
	NameRetryAfter         = "retry-after"
	NameSetCookie          = "set-cookie"
	NameVary               = "vary"
)

// lookup reads the normalized value for name with ok=false when unset.
func (s *Store) lookup(name string) (string, bool) {
	if !s.Exists(name) {
		return "", false
	}

	val, err := s.Get(name)
	return val, err == nil
}

// AcceptRanges returns the Accept-Ranges value with ok=false when unset.
func (s *Store) AcceptRanges() (string, bool) { return s.lookup(NameAcceptRanges) }

// SetAcceptRanges sets the Accept-Ranges header,
// commonly "bytes" or "none" per RFC 7233.
func (s *Store) SetAcceptRanges(val string) { s.Add(NameAcceptRanges, val) }

// DelAcceptRanges removes the Accept-Ranges header.
func (s *Store) DelAcceptRanges() { s.Remove(NameAcceptRanges) }

// CacheControl returns the Cache-Control value with ok=false when unset.
func (s *Store) CacheControl() (string, bool) { return s.lookup(NameCacheControl) }

// SetCacheControl sets the Cache-Control header from one or more directives,
// comma-joined on export.
func (s *Store) SetCacheControl(directives ...string) { s.Add(NameCacheControl, directives...) }

// DelCacheControl removes the Cache-Control header.
func (s *Store) DelCacheControl() { s.Remove(NameCacheControl) }

// ContentDisposition returns the Content-Disposition value with ok=false when unset.
func (s *Store) ContentDisposition() (string, bool) { return s.lookup(NameContentDisposition) }

// SetContentDisposition marks the response downloadable as filename,
// rendering `attachment; filename="<filename>"` with quotes and
// backslashes in filename escaped.
func (s *Store) SetContentDisposition(filename string) {
	s.Add(NameContentDisposition, formatAttachment(filename))
}

// DelContentDisposition removes the Content-Disposition header.
func (s *Store) DelContentDisposition() { s.Remove(NameContentDisposition) }

// ContentLength returns the Content-Length value with ok=false when unset.
func (s *Store) ContentLength() (string, bool) { return s.lookup(NameContentLength) }

// SetContentLength sets the Content-Length header from a byte count.
//
// Useful for responding to HEAD requests without supplying the body itself.
func (s *Store) SetContentLength(n int64) { s.Add(NameContentLength, strconv.FormatInt(n, 10)) }

// DelContentLength removes the Content-Length header.
func (s *Store) DelContentLength() { s.Remove(NameContentLength) }

// ContentLocation returns the Content-Location value with ok=false when unset.
func (s *Store) ContentLocation() (string, bool) { return s.lookup(NameContentLocation) }

// SetContentLocation sets the Content-Location header,
// percent-encoding target per RFC 3986.
// Pass target unencoded or use Add directly to skip the encoding pass.
func (s *Store) SetContentLocation(target string) {
	s.Add(NameContentLocation, uri.Encode(target))
}

// DelContentLocation removes the Content-Location header.
func (s *Store) DelContentLocation() { s.Remove(NameContentLocation) }

// ContentRangeValue returns the Content-Range value with ok=false when unset.
func (s *Store) ContentRangeValue() (string, bool) { return s.lookup(NameContentRange) }

// SetContentRange sets the Content-Range header from cr.
//
// A cr that cannot render, per [ContentRange.Format], returns an error
// wrapping [cairn.ErrNotValid] and leaves the Store untouched.
func (s *Store) SetContentRange(cr ContentRange) error {
	val, err := cr.Format()
	if err != nil {
		return err
	}

	s.Add(NameContentRange, val)
	return nil
}

// DelContentRange removes the Content-Range header.
func (s *Store) DelContentRange() { s.Remove(NameContentRange) }

// ContentType returns the Content-Type value with ok=false when unset.
func (s *Store) ContentType() (string, bool) { return s.lookup(NameContentType) }

// SetContentType sets the Content-Type header verbatim.
func (s *Store) SetContentType(mediaType string) { s.Add(NameContentType, mediaType) }

// DelContentType removes the Content-Type header.
func (s *Store) DelContentType() { s.Remove(NameContentType) }

// ETag returns the ETag value with ok=false when unset.
func (s *Store) ETag() (string, bool) { return s.lookup(NameETag) }

// SetETag sets the ETag header,
// wrapping tag in double quotes unless it already carries them.
// Weak tags in the `W/"..."` form pass through unchanged.
func (s *Store) SetETag(tag string) { s.Add(NameETag, formatETag(tag)) }

// DelETag removes the ETag header.
func (s *Store) DelETag() { s.Remove(NameETag) }

// Expires returns the Expires value with ok=false when unset.
func (s *Store) Expires() (string, bool) { return s.lookup(NameExpires) }

// SetExpires sets the Expires header from t,
// formatted as an RFC 7231 HTTP-date in UTC.
func (s *Store) SetExpires(t time.Time) { s.Add(NameExpires, httpDate(t)) }

// DelExpires removes the Expires header.
func (s *Store) DelExpires() { s.Remove(NameExpires) }

// LastModified returns the Last-Modified value with ok=false when unset.
func (s *Store) LastModified() (string, bool) { return s.lookup(NameLastModified) }

// SetLastModified sets the Last-Modified header from t,
// formatted as an RFC 7231 HTTP-date in UTC.
func (s *Store) SetLastModified(t time.Time) { s.Add(NameLastModified, httpDate(t)) }

// DelLastModified removes the Last-Modified header.
func (s *Store) DelLastModified() { s.Remove(NameLastModified) }

// Location returns the Location value with ok=false when unset.
func (s *Store) Location() (string, bool) { return s.lookup(NameLocation) }

// SetLocation sets the Location header,
// percent-encoding target per RFC 3986.
// Pass target unencoded or use Add directly to skip the encoding pass.
func (s *Store) SetLocation(target string) { s.Add(NameLocation, uri.Encode(target)) }

// DelLocation removes the Location header.
func (s *Store) DelLocation() { s.Remove(NameLocation) }

// RetryAfter returns the Retry-After value with ok=false when unset.
func (s *Store) RetryAfter() (string, bool) { return s.lookup(NameRetryAfter) }

// SetRetryAfter sets the Retry-After header from an integral number of
// seconds. The HTTP-date form of the header is not supported.
func (s *Store) SetRetryAfter(secs int) { s.Add(NameRetryAfter, strconv.Itoa(secs)) }

// DelRetryAfter removes the Retry-After header.
func (s *Store) DelRetryAfter() { s.Remove(NameRetryAfter) }

// Vary returns the Vary value with ok=false when unset.
func (s *Store) Vary() (string, bool) { return s.lookup(NameVary) }

// SetVary sets the Vary header from one or more field names,
// comma-joined on export.
func (s *Store) SetVary(fields ...string) { s.Add(NameVary, fields...) }

// DelVary removes the Vary header.
func (s *Store) DelVary() { s.Remove(NameVary) }
