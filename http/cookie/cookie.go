package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// A Cookie is one Set-Cookie header value waiting to render.
//
// Cookies reach the wire through String; a Jar fills in the fields from
// Set and its Opts, so most callers never construct a Cookie directly.
type Cookie struct {
	Name   string
	Value  string
	Path   string
	Domain string

	// Expires instructs the agent to drop the cookie at an absolute time.
	// The zero value omits the attribute, expiring with the agent session.
	Expires time.Time

	// MaxAge is the cookie lifetime, rendered as integral seconds with
	// any sub-second remainder truncated. Zero omits the attribute.
	MaxAge time.Duration

	Secure   bool
	HTTPOnly bool
}

// String renders c as the value of a single Set-Cookie header line per
// RFC 6265: the name=value pair, then Path, Domain, Expires (cookie-date in
// GMT), Max-Age, HttpOnly, and Secure. Values holding characters outside the
// unquoted cookie-octet set render double-quoted with `"` and `\` escaped.
func (c Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(quoteValue(c.Value))

	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}

	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}

	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(c.Expires.UTC().Format(http.TimeFormat))
	}

	if c.MaxAge != 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.FormatInt(int64(c.MaxAge/time.Second), 10))
	}

	if c.HTTPOnly {
		b.WriteString("; HttpOnly")
	}

	if c.Secure {
		b.WriteString("; Secure")
	}

	return b.String()
}

// valueEscaper escapes the two characters a quoted cookie value cannot carry raw.
var valueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteValue wraps value in double quotes when it holds characters outside
// the RFC 6265 cookie-octet set, which excludes space, comma, semicolon,
// the double quote, and the backslash from printable ASCII.
func quoteValue(value string) string {
	if !strings.ContainsAny(value, ` ",;\`) {
		return value
	}

	return `"` + valueEscaper.Replace(value) + `"`
}

// validName reports whether name is a non-empty RFC 6265 token,
// the cookie-name grammar a receiving agent will accept.
func validName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		if !isTokenByte(name[i]) {
			return false
		}
	}

	return true
}

// validValue reports whether value holds only printable ASCII.
// Control characters and multibyte runes have no safe wire form here.
func validValue(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}

	return true
}

// isTokenByte reports whether b belongs to the RFC 2616 token grammar
// cookie names are built from.
func isTokenByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}

	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}
