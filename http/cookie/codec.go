package cookie

import (
	"encoding/hex"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/xy-planning-network/cairn"
)

// A Codec signs cookie values so receiving agents can hold but not mint them.
//
// Encode and Decode pair a value with the cookie name it is stored under,
// binding the signature to that name. A Codec is read-only after
// construction and safe to share across responses.
type Codec struct {
	sc *securecookie.SecureCookie
}

// NewCodec constructs a *Codec from raw key material.
//
// hashKey authenticates values and wants 32 or 64 random bytes.
// A non-nil blockKey additionally encrypts values and must be a valid AES
// key length of 16, 24, or 32 bytes; pass nil to skip encryption.
func NewCodec(hashKey, blockKey []byte) *Codec {
	return &Codec{sc: securecookie.New(hashKey, blockKey)}
}

// NewCodecFromHex is NewCodec for hex-encoded key material,
// the form key config usually ships in.
//
// An empty encryptKey skips encryption.
// Keys that do not decode return an error wrapping [cairn.ErrBadConfig].
func NewCodecFromHex(hashKey, encryptKey string) (*Codec, error) {
	hk, err := hex.DecodeString(hashKey)
	if err != nil {
		return nil, fmt.Errorf("cairn/http/cookie: %w: hash key is not valid: %s", cairn.ErrBadConfig, err)
	}

	if encryptKey == "" {
		return NewCodec(hk, nil), nil
	}

	ek, err := hex.DecodeString(encryptKey)
	if err != nil {
		return nil, fmt.Errorf("cairn/http/cookie: %w: encryption key is not valid: %s", cairn.ErrBadConfig, err)
	}

	return NewCodec(hk, ek), nil
}

// Encode signs value under name, returning a cookie-safe encoded form.
func (c *Codec) Encode(name, value string) (string, error) {
	encoded, err := c.sc.Encode(name, value)
	if err != nil {
		return "", fmt.Errorf("cairn/http/cookie: encode %q: %s", name, err)
	}

	return encoded, nil
}

// Decode authenticates encoded under name, returning the original value.
// Tampered values and values signed under another name fail.
func (c *Codec) Decode(name, encoded string) (string, error) {
	var value string
	if err := c.sc.Decode(name, encoded, &value); err != nil {
		return "", fmt.Errorf("cairn/http/cookie: decode %q: %s", name, err)
	}

	return value, nil
}
