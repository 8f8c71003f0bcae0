// Package cryptoalg defines the core types, errors and interfaces of the textbook RSA scheme:
// exponents, key pairs, and the processor contract for key derivation, encryption, decryption,
// signing and verification.
package cryptoalg
