package cryptoalg

// DefaultPublicExponent is the exponent used by the demo key pair.
const DefaultPublicExponent Key = 5

// DemoPrimeP and DemoPrimeQ give N = 91 and φ = 72.
const (
	DemoPrimeP int64 = 13
	DemoPrimeQ int64 = 7
)

// DemoMessage only uses symbols below the demo modulus.
const DemoMessage = "HELLO"

// MaxByteModulus is the largest modulus for which byte-wise transforms are lossless.
const MaxByteModulus uint64 = 256

// MaxPrimeAttempts bounds the sampling loop of the prime generator.
const MaxPrimeAttempts = 10000

// MaxKeyPairAttempts bounds the sampling loop of the key-pair generator.
const MaxKeyPairAttempts = 1000
