package uri

import "strings"

const (
	unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"
	delimiters = ":/?#[]@!$&'()*+,;="

	upperhex = "0123456789ABCDEF"
)

var (
	encodeAllowed      = newAllowedTable(unreserved + delimiters)
	encodeValueAllowed = newAllowedTable(unreserved)
)

func newAllowedTable(chars string) (table [256]bool) {
	for i := 0; i < len(chars); i++ {
		table[chars[i]] = true
	}

	return
}

// Encode percent-encodes an unquoted URI string per RFC 3986, Section 2.
//
// Reserved characters - the gen-delims and sub-delims sets - pass through
// untouched so a full URI keeps its structure; everything else, including
// non-ASCII bytes of the UTF-8 encoding, becomes a percent-encoded sequence.
//
// Encode does not guard against double encoding.
// A value that is already percent-encoded should be decoded before calling Encode.
func Encode(uri string) string { return encode(uri, &encodeAllowed) }

// EncodeValue percent-encodes a single URI component, such as a path segment
// or a query parameter value.
//
// Unlike Encode, reserved characters do not survive EncodeValue;
// only the unreserved set passes through untouched.
func EncodeValue(value string) string { return encode(value, &encodeValueAllowed) }

func encode(s string, allowed *[256]bool) string {
	// NOTE(dlk): most values require no escaping, so find the first
	// disallowed byte before committing to a copy.
	i := 0
	for i < len(s) && allowed[s[i]] {
		i++
	}

	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*(len(s)-i))
	b.WriteString(s[:i])

	for ; i < len(s); i++ {
		c := s[i]
		if allowed[c] {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}

	return b.String()
}
