package v1

import (
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
)

// DeriveKeyPairRequest carries caller-chosen primes and public exponent
type DeriveKeyPairRequest struct {
	P              int64 `json:"p" validate:"required,prime"`
	Q              int64 `json:"q" validate:"required,prime,nefield=P"`
	PublicExponent int64 `json:"public_exponent" validate:"required,gt=1"`
}

// Validate for validating DeriveKeyPairRequest struct
func (r *DeriveKeyPairRequest) Validate() error {
	return validateRequest(r)
}

// GenerateKeyPairRequest optionally overrides the configured public exponent
type GenerateKeyPairRequest struct {
	PublicExponent int64 `json:"public_exponent" validate:"omitempty,gt=1"`
}

// Validate for validating GenerateKeyPairRequest struct
func (r *GenerateKeyPairRequest) Validate() error {
	return validateRequest(r)
}

// EncryptRequest carries the plaintext to encrypt
type EncryptRequest struct {
	PlainText string `json:"plaintext" validate:"required"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateRequest(r)
}

// DecryptRequest carries ciphertext symbols, one per byte
type DecryptRequest struct {
	CipherText []int `json:"ciphertext" validate:"required,min=1,dive,gte=0,lte=255"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateRequest(r)
}

// SignRequest carries the message to sign
type SignRequest struct {
	Message string `json:"message" validate:"required"`
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	return validateRequest(r)
}

// VerifyRequest carries a message and the signature symbols to check against it
type VerifyRequest struct {
	Message   string `json:"message" validate:"required"`
	Signature []int  `json:"signature" validate:"required,min=1,dive,gte=0,lte=255"`
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return validateRequest(r)
}

// RoundTripRequest carries the message to run through both round trips.
// An empty message selects the demo message.
type RoundTripRequest struct {
	Message string `json:"message"`
}

func validateRequest(r interface{}) error {
	return validators.New().Struct(r)
}

// KeyPairResponse represents a stored key pair
type KeyPairResponse struct {
	ID              string    `json:"id"`
	P               int64     `json:"p"`
	Q               int64     `json:"q"`
	Modulus         uint64    `json:"modulus"`
	PublicExponent  int64     `json:"public_exponent"`
	PrivateExponent int64     `json:"private_exponent"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

func newKeyPairResponse(k *keys.KeyPairMeta) KeyPairResponse {
	return KeyPairResponse{
		ID:              k.ID,
		P:               k.P,
		Q:               k.Q,
		Modulus:         k.Modulus,
		PublicExponent:  k.PublicExponent,
		PrivateExponent: k.PrivateExponent,
		DateTimeCreated: k.DateTimeCreated,
		UserID:          k.UserID,
	}
}

// EncryptResponse holds the ciphertext symbols
type EncryptResponse struct {
	CipherText []int `json:"ciphertext"`
}

// DecryptResponse holds the recovered plaintext
type DecryptResponse struct {
	PlainText string `json:"plaintext"`
}

// SignResponse holds the signature symbols
type SignResponse struct {
	Signature []int `json:"signature"`
}

// VerifyResponse reports whether a signature matched
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// RoundTripResponse reports the outcome of both round trips
type RoundTripResponse struct {
	KeyPairID           string `json:"key_pair_id"`
	Message             string `json:"message"`
	CipherText          []int  `json:"ciphertext"`
	Signature           []int  `json:"signature"`
	EncryptionSucceeded bool   `json:"encryption_succeeded"`
	SignatureSucceeded  bool   `json:"signature_succeeded"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func toSymbols(b []byte) []int {
	symbols := make([]int, len(b))
	for i, c := range b {
		symbols[i] = int(c)
	}
	return symbols
}

// fromSymbols expects symbols already validated to lie in [0, 255].
func fromSymbols(symbols []int) []byte {
	b := make([]byte, len(symbols))
	for i, s := range symbols {
		b[i] = byte(s)
	}
	return b
}
