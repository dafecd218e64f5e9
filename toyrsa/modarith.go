package toyrsa

import (
	"fmt"
	"math/big"
)

// ExtendedGCD returns Bézout coefficients s, t with a*s + b*t = gcd(a, b),
// computed with the iterative extended Euclidean algorithm.
func ExtendedGCD(a, b *big.Int) (s, t *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, curS := big.NewInt(1), big.NewInt(0)
	oldT, curT := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, curS)
		oldS, curS = curS, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, curT)
		oldT, curT = curT, new(big.Int).Sub(oldT, tmp)
	}
	// oldR now holds gcd(a, b)
	return oldS, oldT
}

// ModInverse returns ((x mod phi) + phi) mod phi where x is the Bézout
// coefficient of e from ExtendedGCD(e, phi). The result is only an inverse
// of e when gcd(e, phi) = 1; that is not checked.
func ModInverse(e, phi *big.Int) (*big.Int, error) {
	if phi.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModulus, phi)
	}
	x, _ := ExtendedGCD(e, phi)
	d := new(big.Int).Mod(x, phi)
	d.Add(d, phi)
	return d.Mod(d, phi), nil
}
