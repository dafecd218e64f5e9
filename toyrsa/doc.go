// Package toyrsa is a textbook RSA toy that encrypts text one character at
// a time.
//
// Keys are built from two primes drawn from [10000, 50000) with trial
// division as the primality test. Every character is encrypted on its own
// as code point ^ e (mod n) and written in decimal, followed by a random
// delimiter from ",.!?:;-_":
//
//	kp, err := toyrsa.GenerateKeyPair(nil)
//	ct, err := toyrsa.EncryptText(nil, "hi", kp.Public) // e.g. "81853202!1394217,"
//	pt, err := toyrsa.DecryptText(ct, kp.Private)
//
// None of this is secure. The primes are tiny, there is no padding, and
// equal characters encrypt to equal numbers.
//
// Debug logging goes through the standard log package and is enabled by
// setting TOYRSA_DEBUG; TOYRSA_DUMP additionally dumps generated keypairs,
// private exponent included.
package toyrsa
