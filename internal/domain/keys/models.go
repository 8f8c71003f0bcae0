package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no key pair exists for an ID.
var ErrNotFound = errors.New("key pair not found")

// KeyPairMeta is a stored key pair together with the primes it was derived from.
// The totient is recomputed from P and Q when needed and never stored.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid4"`
	P               int64     `validate:"required,prime"`
	Q               int64     `validate:"required,prime,nefield=P"`
	Modulus         uint64    `validate:"required,gte=4"`
	PublicExponent  int64     `validate:"required,gt=0"`
	PrivateExponent int64     `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required"`
}

// NewKeyPairMeta wraps a derived key pair into a new record owned by userID.
func NewKeyPairMeta(userID string, p, q int64, keyPair *cryptoalg.KeyPair) *KeyPairMeta {
	return &KeyPairMeta{
		ID:              uuid.NewString(),
		P:               p,
		Q:               q,
		Modulus:         keyPair.Modulus,
		PublicExponent:  int64(keyPair.PublicExponent),
		PrivateExponent: int64(keyPair.PrivateExponent),
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}

// KeyPair returns the key material of the record.
func (k *KeyPairMeta) KeyPair() *cryptoalg.KeyPair {
	return &cryptoalg.KeyPair{
		PublicExponent:  cryptoalg.Key(k.PublicExponent),
		PrivateExponent: cryptoalg.Key(k.PrivateExponent),
		Modulus:         k.Modulus,
	}
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if uint64(k.P)*uint64(k.Q) != k.Modulus {
		return fmt.Errorf("validation failed: modulus %d != %d * %d", k.Modulus, k.P, k.Q)
	}
	return nil
}

// KeyPairQuery filters, sorts and pages stored key pairs
type KeyPairQuery struct {
	Modulus         uint64    `validate:"omitempty,gte=4"`
	PublicExponent  int64     `validate:"omitempty,gt=0"`
	UserID          string    `validate:"omitempty"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created modulus public_exponent"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery creates a KeyPairQuery with default values.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	err := validators.New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}

// RoundTripReport is the pass/fail outcome of both protocols for one message.
type RoundTripReport struct {
	KeyPairID           string
	Message             string
	CipherText          []byte
	Signature           []byte
	EncryptionSucceeded bool
	SignatureSucceeded  bool
}
