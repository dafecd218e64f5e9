package toyrsa

import "errors"

var (
	// ErrInvalidRange is returned when a prime range has a negative bound
	// or is empty.
	ErrInvalidRange = errors.New("invalid prime range")

	// ErrNoPrime is returned when an attempt cap is set and no prime was
	// drawn before it was reached.
	ErrNoPrime = errors.New("no prime found within attempt limit")

	// ErrInvalidModulus is returned when a modular inverse is requested for
	// a non-positive modulus.
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("invalid key parameters")

	// ErrInvalidCodePoint is returned when a decrypted value is not a valid
	// Unicode code point. This usually means the wrong key was used.
	ErrInvalidCodePoint = errors.New("decrypted value is not a valid code point")
)
