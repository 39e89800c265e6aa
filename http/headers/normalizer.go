package headers

import "strings"

// A Normalizer converts the ordered raw values of one header entry into the
// single string placed on the wire for that header.
//
// Normalizers run at export time, not at write time,
// so repeated writes never pay for formatting until the response finalizes.
type Normalizer func(values []string) string

// JoinWith builds a stateless Normalizer joining values with sep.
func JoinWith(sep string) Normalizer {
	return func(values []string) string {
		return strings.Join(values, sep)
	}
}

var (
	// CommaJoin is the default Normalizer.
	// Most multi-valued headers (Vary, Link, Cache-Control) render as comma-separated lists.
	CommaJoin = JoinWith(",")

	// SemicolonJoin suits headers whose grammar separates parts with semicolons.
	SemicolonJoin = JoinWith(";")
)
