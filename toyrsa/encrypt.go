package toyrsa

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// EncryptChar encrypts one character: result = code point ^ e (mod n).
// Code points >= n are not rejected and will not decrypt back.
func EncryptChar(ch rune, pub PublicKey) *big.Int {
	m := big.NewInt(int64(ch))
	return m.Exp(m, pub.e, pub.n)
}

// DecryptChar decrypts one ciphertext unit: code point = c ^ d (mod n).
// A result that is not a valid Unicode code point yields ErrInvalidCodePoint.
func DecryptChar(c *big.Int, priv PrivateKey) (rune, error) {
	m := new(big.Int).Exp(c, priv.d, priv.n)
	if !m.IsInt64() || m.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(m.Int64())) {
		return utf8.RuneError, fmt.Errorf("%w: %s", ErrInvalidCodePoint, m)
	}
	return rune(m.Int64()), nil
}
