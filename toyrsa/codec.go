package toyrsa

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// delimiters separate ciphertext units on the wire. None of them is a
// digit, so splitting is never ambiguous.
var delimiters = []rune{',', '.', '!', '?', ':', ';', '-', '_'}

// Delimiters returns a copy of the delimiter alphabet.
func Delimiters() []rune {
	out := make([]rune, len(delimiters))
	copy(out, delimiters)
	return out
}

// IsDelimiter reports whether r belongs to the delimiter alphabet.
func IsDelimiter(r rune) bool {
	for _, d := range delimiters {
		if r == d {
			return true
		}
	}
	return false
}

// EncryptText encrypts text character by character. Each ciphertext unit is
// written in decimal and followed by one delimiter picked uniformly at
// random from random (crypto/rand.Reader if nil). The delimiters carry no
// meaning, so encrypting the same text twice gives different strings.
func EncryptText(random io.Reader, text string, pub PublicKey) (string, error) {
	var sb strings.Builder
	for _, ch := range text {
		sb.WriteString(EncryptChar(ch, pub).String())
		i, err := randRange(random, 0, int64(len(delimiters)))
		if err != nil {
			return "", fmt.Errorf("pick delimiter: %w", err)
		}
		sb.WriteRune(delimiters[i])
	}
	return sb.String(), nil
}

// DecryptText reverses EncryptText. The input is split on every delimiter
// character and empty tokens are dropped. Tokens that are not decimal
// integers are skipped without error. If any token decrypts to an invalid
// code point the whole call fails with ErrInvalidCodePoint and no partial
// plaintext is returned.
func DecryptText(cipherText string, priv PrivateKey) (string, error) {
	var sb strings.Builder
	for i, token := range strings.FieldsFunc(cipherText, IsDelimiter) {
		c, ok := new(big.Int).SetString(token, 10)
		if !ok {
			logf(dCodec, "[decrypt]", "skipping malformed token %d %q", i, token)
			continue
		}
		ch, err := DecryptChar(c, priv)
		if err != nil {
			return "", fmt.Errorf("token %d: %w", i, err)
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}
