package toyrsa

import (
	"errors"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// sieve returns composite[i] == false exactly for the primes below limit.
func sieve(limit int) []bool {
	composite := make([]bool, limit)
	composite[0], composite[1] = true, true
	for i := 2; i*i < limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return composite
}

func TestIsPrimeSmall(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{49, false},
		{97, true},
		{10007, true},
		{10001, false}, // 73 * 137
		{65537, true},
		{49999, true},
		{49997, false}, // 17 * 2941
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrime(tt.n), "IsPrime(%d)", tt.n)
	}
}

func TestIsPrimeMatchesSieve(t *testing.T) {
	limit := 1000000
	if testing.Short() {
		limit = 100000
	}
	composite := sieve(limit)
	for n := 0; n < limit; n++ {
		if IsPrime(int64(n)) != !composite[n] {
			t.Fatalf("IsPrime(%d) = %v, sieve says prime = %v", n, IsPrime(int64(n)), !composite[n])
		}
	}
}

func TestIsPrimeNoSmallerDivisor(t *testing.T) {
	for n := int64(2); n < 5000; n++ {
		if !IsPrime(n) {
			continue
		}
		for i := int64(2); i < n; i++ {
			if n%i == 0 {
				t.Fatalf("IsPrime(%d) but %d divides it", n, i)
			}
		}
	}
}

func TestGeneratePrimeInRange(t *testing.T) {
	rng := seeded(1)
	for i := 0; i < 200; i++ {
		p, err := GeneratePrime(rng, DefaultPrimeMin, DefaultPrimeMax)
		require.NoError(t, err)
		assert.True(t, IsPrime(p), "%d is not prime", p)
		assert.GreaterOrEqual(t, p, DefaultPrimeMin)
		assert.Less(t, p, DefaultPrimeMax)
	}
}

func TestGeneratePrimeSingleton(t *testing.T) {
	// [13, 14) holds exactly one candidate
	p, err := GeneratePrime(seeded(2), 13, 14)
	require.NoError(t, err)
	assert.Equal(t, int64(13), p)
}

func TestGeneratePrimeAttemptCap(t *testing.T) {
	// 14, 15 and 16 are composite and 17 is excluded, so only the cap ends
	// the search
	p := Params{MaxAttempts: 50}
	_, err := p.GeneratePrime(seeded(3), 14, 17)
	assert.True(t, errors.Is(err, ErrNoPrime), "got %v", err)
}

func TestGeneratePrimeInvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int64
	}{
		{"negative min", -5, 10},
		{"empty", 10, 10},
		{"reversed", 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePrime(seeded(4), tt.min, tt.max)
			assert.True(t, errors.Is(err, ErrInvalidRange), "got %v", err)
		})
	}
}

func TestGeneratePrimeReaderError(t *testing.T) {
	_, err := GeneratePrime(failingReader{}, 10, 100)
	assert.True(t, errors.Is(err, errBrokenReader), "got %v", err)
}

var errBrokenReader = errors.New("broken reader")

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errBrokenReader
}
