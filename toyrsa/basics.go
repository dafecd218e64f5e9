package toyrsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
)

// PublicKey is the encryption half of a keypair: (e, n).
type PublicKey struct {
	e, n *big.Int
}

// PrivateKey is the decryption half of a keypair: (d, n).
type PrivateKey struct {
	d, n *big.Int
}

// KeyPair owns one public and one private key sharing the same modulus.
// Neither half is ever replaced on its own; a new pair is generated instead.
type KeyPair struct {
	// Id identifies the pair for display and logging. It is never written
	// into ciphertext.
	Id      uuid.UUID
	Public  PublicKey
	Private PrivateKey
}

// NewPublicKey builds a public key from an exponent and a modulus.
// The arguments are copied.
func NewPublicKey(e, n *big.Int) PublicKey {
	return PublicKey{e: new(big.Int).Set(e), n: new(big.Int).Set(n)}
}

// NewPrivateKey builds a private key from an exponent and a modulus.
// The arguments are copied.
func NewPrivateKey(d, n *big.Int) PrivateKey {
	return PrivateKey{d: new(big.Int).Set(d), n: new(big.Int).Set(n)}
}

// E returns a copy of the public exponent.
func (k PublicKey) E() *big.Int { return new(big.Int).Set(k.e) }

// N returns a copy of the modulus.
func (k PublicKey) N() *big.Int { return new(big.Int).Set(k.n) }

// D returns a copy of the private exponent.
func (k PrivateKey) D() *big.Int { return new(big.Int).Set(k.d) }

// N returns a copy of the modulus.
func (k PrivateKey) N() *big.Int { return new(big.Int).Set(k.n) }

func (kp *KeyPair) logHeader() string {
	return "[keypair " + kp.Id.String() + "]"
}

func (kp *KeyPair) logf(topic logTopic, format string, a ...interface{}) {
	logf(topic, kp.logHeader(), format, a...)
}

// dump prints the whole pair, private exponent included. Only ever enabled
// explicitly through the dump switch.
func (kp *KeyPair) dump() {
	if IsDebug() && IsDump() {
		kp.logf(dDump, "%s", spew.Sdump(kp))
	}
}

func (kp *KeyPair) checkRep() {
	if !IsDebug() {
		return
	}
	assertf(kp.Public.n.Cmp(kp.Private.n) == 0, kp.logHeader(), "public and private modulus differ")
	assertf(kp.Private.d.Sign() >= 0, kp.logHeader(), "private exponent must be non-negative")
}

// source returns random, or crypto/rand.Reader when random is nil.
func source(random io.Reader) io.Reader {
	if random == nil {
		return rand.Reader
	}
	return random
}

// randRange draws a uniform integer from [min, max). Callers make sure max > min.
func randRange(random io.Reader, min, max int64) (int64, error) {
	r, err := rand.Int(source(random), big.NewInt(max-min))
	if err != nil {
		return 0, err
	}
	return r.Int64() + min, nil
}
