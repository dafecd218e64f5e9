package toyrsa

import (
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"
)

const (
	DefaultPrimeMin int64 = 10000
	DefaultPrimeMax int64 = 50000
	DefaultExponent int64 = 65537

	// lower bound of the range the fallback public exponent is drawn from
	fallbackExponentMin int64 = 3
)

// Params controls key generation. Primes are drawn from [PrimeMin, PrimeMax).
type Params struct {
	PrimeMin int64
	PrimeMax int64
	// Exponent is the public exponent used unless it divides phi.
	Exponent int64
	// MaxAttempts caps the draws per prime search. Zero or negative means
	// no cap.
	MaxAttempts int
}

// DefaultParams returns primes in [10000, 50000), e = 65537 and no attempt cap.
func DefaultParams() Params {
	return Params{
		PrimeMin: DefaultPrimeMin,
		PrimeMax: DefaultPrimeMax,
		Exponent: DefaultExponent,
	}
}

// Validate rejects negative or empty prime ranges and exponents below 2.
func (p Params) Validate() error {
	if p.PrimeMin < 0 || p.PrimeMax <= p.PrimeMin {
		return fmt.Errorf("%w: prime range [%d, %d)", ErrInvalidParams, p.PrimeMin, p.PrimeMax)
	}
	if p.Exponent < 2 {
		return fmt.Errorf("%w: exponent %d", ErrInvalidParams, p.Exponent)
	}
	return nil
}

// GenerateKeyPair generates a keypair with DefaultParams.
func GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	return DefaultParams().GenerateKeyPair(random)
}

// GenerateKeyPair draws two primes independently (they may be equal) and
// derives a keypair from them with KeyPairFromPrimes.
func (p Params) GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p1, err := p.GeneratePrime(random, p.PrimeMin, p.PrimeMax)
	if err != nil {
		return nil, fmt.Errorf("generate p: %w", err)
	}
	p2, err := p.GeneratePrime(random, p.PrimeMin, p.PrimeMax)
	if err != nil {
		return nil, fmt.Errorf("generate q: %w", err)
	}
	return p.KeyPairFromPrimes(random, p1, p2)
}

// KeyPairFromPrimes derives a keypair from the primes p1 and p2:
//
//	n = p1*p2, phi = (p1-1)(p2-1)
//	e = p.Exponent, or a fresh prime in [3, phi) if phi mod e == 0
//	d = ModInverse(e, phi)
//
// Only the phi mod e == 0 case is handled. If e shares some other factor
// with phi the returned pair does not round-trip and nothing reports it.
// random is only read in the fallback case.
func (p Params) KeyPairFromPrimes(random io.Reader, p1, p2 int64) (*KeyPair, error) {
	n := new(big.Int).Mul(big.NewInt(p1), big.NewInt(p2))
	phi := new(big.Int).Mul(big.NewInt(p1-1), big.NewInt(p2-1))

	e := big.NewInt(p.Exponent)
	if e.Sign() > 0 && new(big.Int).Mod(phi, e).Sign() == 0 {
		if !phi.IsInt64() {
			return nil, fmt.Errorf("%w: phi %s too large for fallback exponent", ErrInvalidRange, phi)
		}
		fallback, err := p.GeneratePrime(random, fallbackExponentMin, phi.Int64())
		if err != nil {
			return nil, fmt.Errorf("generate fallback exponent: %w", err)
		}
		e.SetInt64(fallback)
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{
		Id:      uuid.New(),
		Public:  PublicKey{e: e, n: n},
		Private: PrivateKey{d: d, n: new(big.Int).Set(n)},
	}
	kp.logf(dKeys, "generated e=%s n=%s", e, n)
	kp.dump()
	kp.checkRep()
	return kp, nil
}
