package cryptoalg

// IsPrime reports whether n is prime using trial division over odd divisors.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
