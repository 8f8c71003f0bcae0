//go:build unit
// +build unit

package cryptoalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	primes := map[int64]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true, 29: true, 31: true, 37: true, 41: true, 43: true, 47: true}
	for n := int64(-5); n < 50; n++ {
		assert.Equal(t, primes[n], IsPrime(n), "n=%d", n)
	}
	assert.True(t, IsPrime(2147483647))
	assert.False(t, IsPrime(2147483647*3))
	assert.False(t, IsPrime(math.MinInt64))
}
