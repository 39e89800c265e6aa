package cookie

import (
	"fmt"
	"time"
)

// An Opt configures one Cookie as a Jar sets it.
type Opt func(*Cookie) error

// WithDomain restricts the cookie to domain and its subdomains.
// The domain must include the origin server or the agent rejects the cookie.
func WithDomain(domain string) Opt {
	return func(c *Cookie) error {
		c.Domain = domain
		return nil
	}
}

// WithExpires sets an absolute expiration,
// converted to UTC before rendering as a cookie-date.
func WithExpires(t time.Time) Opt {
	return func(c *Cookie) error {
		c.Expires = t
		return nil
	}
}

// WithHTTPOnly directs the agent to withhold the cookie from scripts.
// Cookies carry HttpOnly unless switched off here.
func WithHTTPOnly(httpOnly bool) Opt {
	return func(c *Cookie) error {
		c.HTTPOnly = httpOnly
		return nil
	}
}

// WithMaxAge bounds the cookie lifetime to d,
// rendered as integral seconds with any sub-second remainder truncated.
// A negative d returns an error wrapping ErrInvalidValue.
func WithMaxAge(d time.Duration) Opt {
	return func(c *Cookie) error {
		if d < 0 {
			return fmt.Errorf("cairn/http/cookie: %w: negative max-age %s", ErrInvalidValue, d)
		}

		c.MaxAge = d
		return nil
	}
}

// WithPath scopes the cookie to path and its subdirectories.
// Agents do not reliably isolate cookies by path, so this is not a
// security boundary.
func WithPath(path string) Opt {
	return func(c *Cookie) error {
		c.Path = path
		return nil
	}
}

// WithSecure directs the agent to return the cookie only over HTTPS,
// overriding the Jar's policy default for this cookie.
func WithSecure(secure bool) Opt {
	return func(c *Cookie) error {
		c.Secure = secure
		return nil
	}
}

// A Jar accumulates the cookies one response will set.
//
// Setting a name already held replaces that cookie in place;
// distinct names keep their insertion order for export.
// Cookie names are case-sensitive, unlike header names.
//
// A Jar belongs to a single response and is not safe for concurrent use.
type Jar struct {
	order   []string
	cookies map[string]Cookie
	secure  bool
}

// NewJar constructs an empty *Jar.
//
// secureByDefault is the Secure attribute for cookies that do not choose
// their own with WithSecure. Serve over HTTPS and pass true outside of
// local development.
func NewJar(secureByDefault bool) *Jar {
	return &Jar{cookies: make(map[string]Cookie), secure: secureByDefault}
}

// Set builds or replaces the cookie entry for name.
//
// The name must be a non-empty RFC 6265 token and the value printable
// ASCII; violations return an error wrapping ErrInvalidName or
// ErrInvalidValue and leave the Jar untouched, as does any failing Opt.
func (j *Jar) Set(name, value string, opts ...Opt) error {
	if !validName(name) {
		return fmt.Errorf("cairn/http/cookie: %w: %q", ErrInvalidName, name)
	}

	if !validValue(value) {
		return fmt.Errorf("cairn/http/cookie: %w: %q", ErrInvalidValue, value)
	}

	c := Cookie{Name: name, Value: value, Secure: j.secure, HTTPOnly: true}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return err
		}
	}

	j.insert(c)
	return nil
}

// SetSigned is Set with value first signed and encoded through codec,
// so the receiving agent can hold but not forge or read into it.
// Read it back with [Codec.Decode].
func (j *Jar) SetSigned(codec *Codec, name, value string, opts ...Opt) error {
	encoded, err := codec.Encode(name, value)
	if err != nil {
		return err
	}

	return j.Set(name, encoded, opts...)
}

// Unset builds or replaces the entry for name with an empty value that
// expired at the Unix epoch, instructing the agent to drop its copy.
//
// Agents match on path and domain as well as name: a cookie set with
// either attribute must instead be cleared through Set with the same
// attributes and a WithExpires in the past.
func (j *Jar) Unset(name string) error {
	if !validName(name) {
		return fmt.Errorf("cairn/http/cookie: %w: %q", ErrInvalidName, name)
	}

	j.insert(Cookie{Name: name, Expires: time.Unix(0, 0).UTC()})
	return nil
}

// All returns the held cookies in insertion order.
func (j *Jar) All() []Cookie {
	out := make([]Cookie, 0, len(j.order))
	for _, name := range j.order {
		out = append(out, j.cookies[name])
	}

	return out
}

// Len reports the number of cookies held.
func (j *Jar) Len() int { return len(j.order) }

func (j *Jar) insert(c Cookie) {
	if _, ok := j.cookies[c.Name]; !ok {
		j.order = append(j.order, c.Name)
	}

	j.cookies[c.Name] = c
}
