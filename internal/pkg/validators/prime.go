package validators

import (
	"math"
	"reflect"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"

	"github.com/go-playground/validator/v10"
)

// PrimeTag is the struct tag registered by RegisterTextbookRSAValidations.
const PrimeTag = "prime"

// PrimeValidation reports whether an integer field holds a prime. Unsigned values above
// math.MaxInt64 are rejected.
func PrimeValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cryptoalg.IsPrime(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := field.Uint()
		return u <= math.MaxInt64 && cryptoalg.IsPrime(int64(u))
	default:
		return false
	}
}

// RegisterTextbookRSAValidations registers the custom tags used by key-pair models and DTOs.
func RegisterTextbookRSAValidations(v *validator.Validate) error {
	return v.RegisterValidation(PrimeTag, PrimeValidation)
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterTextbookRSAValidations(v); err != nil {
		panic(err)
	}
	return v
}
