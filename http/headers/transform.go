package headers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xy-planning-network/cairn"
)

// ContentRange describes the range payload of a Content-Range header
// per RFC 7233, Section 4.2.
type ContentRange struct {
	// Start and End designate the satisfied range, inclusive on both ends.
	Start int64
	End   int64

	// Total is the complete length of the representation.
	// A Total of -1 renders the unknown-length form "*".
	Total int64

	// Unit is the range unit, defaulting to "bytes".
	Unit string
}

// Format renders cr as "<unit> <start>-<end>/<total>".
//
// A negative Start, an End before Start, or a Total below -1 returns an
// error wrapping [cairn.ErrNotValid].
func (cr ContentRange) Format() (string, error) {
	if cr.Start < 0 || cr.End < cr.Start || cr.Total < -1 {
		return "", fmt.Errorf("cairn/http/headers: %w: content range %d-%d/%d", cairn.ErrNotValid, cr.Start, cr.End, cr.Total)
	}

	unit := cr.Unit
	if unit == "" {
		unit = "bytes"
	}

	total := "*"
	if cr.Total >= 0 {
		total = strconv.FormatInt(cr.Total, 10)
	}

	return fmt.Sprintf("%s %d-%d/%s", unit, cr.Start, cr.End, total), nil
}

// filenameEscaper escapes the characters a quoted-string cannot carry raw.
var filenameEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// formatAttachment renders a Content-Disposition attachment clause for filename.
func formatAttachment(filename string) string {
	return `attachment; filename="` + filenameEscaper.Replace(filename) + `"`
}

// formatETag wraps tag in double quotes unless it already ends with one,
// passing through quoted strong and weak tags untouched.
func formatETag(tag string) string {
	if strings.HasSuffix(tag, `"`) {
		return tag
	}

	return `"` + tag + `"`
}

// httpDate formats t as an RFC 7231 HTTP-date, always in UTC.
func httpDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
