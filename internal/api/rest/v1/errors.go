package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// unprocessable lists domain errors caused by well-formed but unusable input
var unprocessable = []error{
	cryptoalg.ErrNotInvertible,
	cryptoalg.ErrNotPrime,
	cryptoalg.ErrEqualPrimes,
	cryptoalg.ErrModulusOverflow,
	cryptoalg.ErrSymbolOutOfRange,
	cryptoalg.ErrInvalidEncoding,
	cryptoalg.ErrKeyPairNotFound,
	cryptoalg.ErrPrimeNotFound,
}

func statusFor(err error) int {
	if errors.Is(err, keys.ErrNotFound) {
		return http.StatusNotFound
	}
	for _, target := range unprocessable {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}
