package secret

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrMalformedBearerKey is returned by [ParseBearerKey] for any value that
// is not a well-formed "selector:secret" pair. Callers treat it like an
// unknown token and must not report which part was wrong.
var ErrMalformedBearerKey = errors.New("malformed bearer key")

// EncodeBearerKey composes the public "selector:secret" value carried in an
// activation URL or an autologin cookie. This is the only representation in
// which the cleartext secret ever leaves the process.
func EncodeBearerKey(selector string, tokenSecret []byte) string {
	return selector + ":" + hex.EncodeToString(tokenSecret)
}

// ParseBearerKey splits a "selector:secret" value back into its halves.
// The selector's shape is checked strictly so that garbage input is
// rejected before it reaches storage.
func ParseBearerKey(key string) (selector string, tokenSecret []byte, err error) {
	selector, secretHex, ok := strings.Cut(key, ":")
	if !ok || len(selector) != hex.EncodedLen(SelectorBytes) {
		return "", nil, ErrMalformedBearerKey
	}

	tokenSecret, err = hex.DecodeString(secretHex)
	if err != nil || len(tokenSecret) != SecretBytes {
		return "", nil, ErrMalformedBearerKey
	}

	return selector, tokenSecret, nil
}
