package toyrsa

import (
	"fmt"
	"io"
)

// IsPrime reports whether n is prime by trial division up to floor(sqrt(n)).
// It runs in O(sqrt(n)) and is only meant for the small numbers used here.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// GeneratePrime draws uniform integers from [min, max) until one is prime.
// It does not terminate if the range holds no prime; use
// Params.GeneratePrime with MaxAttempts set to bound the search.
func GeneratePrime(random io.Reader, min, max int64) (int64, error) {
	return generatePrime(random, min, max, 0)
}

// GeneratePrime is like the package-level GeneratePrime but gives up with
// ErrNoPrime after p.MaxAttempts draws when MaxAttempts is positive.
func (p Params) GeneratePrime(random io.Reader, min, max int64) (int64, error) {
	return generatePrime(random, min, max, p.MaxAttempts)
}

func generatePrime(random io.Reader, min, max int64, maxAttempts int) (int64, error) {
	if min < 0 || max <= min {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		candidate, err := randRange(random, min, max)
		if err != nil {
			return 0, err
		}
		if IsPrime(candidate) {
			logf(dPrime, "[prime]", "found %d in [%d, %d) after %d draws", candidate, min, max, attempt)
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("%w: %d draws from [%d, %d)", ErrNoPrime, maxAttempts, min, max)
}
