package resp

import (
	"strings"

	"github.com/xy-planning-network/cairn/http/headers"
	"github.com/xy-planning-network/cairn/http/uri"
)

// A Link is one RFC 5988 web link a response advertises,
// rendered by String into a single Link header value.
// Construct through Response.AddLink or a literal plus LinkOpts.
type Link struct {
	// Target is the IRI the link points at,
	// percent-encoded when rendered.
	Target string

	// Rel is the relation type, a registered name such as "next" or an
	// extension relation URI.
	Rel string

	title        string
	hasTitle     bool
	titleLang    string
	titleText    string
	hasTitleStar bool
	typeHint     string
	hasType      bool
	hreflang     []string
	anchor       string
	hasAnchor    bool
}

// A LinkOpt attaches one optional parameter to a Link.
type LinkOpt func(*Link)

// LinkTitle labels the link destination for humans.
// Titles render inside a quoted-string, so ASCII without double quotes
// travels safest; reach for LinkTitleStar beyond that.
func LinkTitle(title string) LinkOpt {
	return func(l *Link) {
		l.title = title
		l.hasTitle = true
	}
}

// LinkTitleStar localizes the destination label as the RFC 8187 title*
// parameter, from an RFC 5646 language tag, which may be empty, and the
// label text, percent-encoded as UTF-8 when rendered.
func LinkTitleStar(lang, text string) LinkOpt {
	return func(l *Link) {
		l.titleLang = lang
		l.titleText = text
		l.hasTitleStar = true
	}
}

// LinkTypeHint hints the media type of the link destination.
// Per RFC 5988 it never overrides the Content-Type the destination
// actually returns.
func LinkTypeHint(mediaType string) LinkOpt {
	return func(l *Link) {
		l.typeHint = mediaType
		l.hasType = true
	}
}

// LinkHreflang hints the languages available at the destination,
// one hreflang parameter rendered per tag.
func LinkHreflang(tags ...string) LinkOpt {
	return func(l *Link) {
		l.hreflang = append(l.hreflang, tags...)
	}
}

// LinkAnchor overrides the link's context IRI,
// percent-encoded when rendered. The value may be a relative URI.
func LinkAnchor(anchor string) LinkOpt {
	return func(l *Link) {
		l.anchor = anchor
		l.hasAnchor = true
	}
}

// String renders l as one Link header value per RFC 5988.
//
// A Rel containing "//" is treated as one or more extension relation
// URIs: each whitespace-separated URI is percent-encoded and the whole
// relation is quoted. Registered relation names pass through bare.
func (l Link) String() string {
	rel := l.Rel
	if strings.Contains(rel, "//") {
		if strings.Contains(rel, " ") {
			encoded := strings.Fields(rel)
			for i, r := range encoded {
				encoded[i] = uri.Encode(r)
			}

			rel = `"` + strings.Join(encoded, " ") + `"`
		} else {
			rel = `"` + uri.Encode(rel) + `"`
		}
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(uri.Encode(l.Target))
	b.WriteString(">; rel=")
	b.WriteString(rel)

	if l.hasTitle {
		b.WriteString(`; title="`)
		b.WriteString(l.title)
		b.WriteByte('"')
	}

	if l.hasTitleStar {
		b.WriteString("; title*=UTF-8'")
		b.WriteString(l.titleLang)
		b.WriteByte('\'')
		b.WriteString(uri.EncodeValue(l.titleText))
	}

	if l.hasType {
		b.WriteString(`; type="`)
		b.WriteString(l.typeHint)
		b.WriteByte('"')
	}

	for _, lang := range l.hreflang {
		b.WriteString("; hreflang=")
		b.WriteString(lang)
	}

	if l.hasAnchor {
		b.WriteString(`; anchor="`)
		b.WriteString(uri.Encode(l.anchor))
		b.WriteByte('"')
	}

	return b.String()
}

// AddLink advertises target under the relation rel in the Link header,
// appending to any links already added; export joins them with commas
// per RFC 5988.
func (r *Response) AddLink(target, rel string, opts ...LinkOpt) {
	l := Link{Target: target, Rel: rel}
	for _, opt := range opts {
		opt(&l)
	}

	value := l.String()
	if err := r.headers.Append(headers.NameLink, value); err != nil {
		r.headers.Add(headers.NameLink, value)
	}
}
