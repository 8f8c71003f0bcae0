package models

import (
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// KeyPairModel is the GORM database model for stored key pairs
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	P               int64     `gorm:"not null"`
	Q               int64     `gorm:"not null"`
	Modulus         int64     `gorm:"not null;index"`
	PublicExponent  int64     `gorm:"not null;index"`
	PrivateExponent int64     `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		P:               m.P,
		Q:               m.Q,
		Modulus:         uint64(m.Modulus),
		PublicExponent:  m.PublicExponent,
		PrivateExponent: m.PrivateExponent,
		DateTimeCreated: m.DateTimeCreated,
		UserID:          m.UserID,
	}
}

// FromDomain converts domain entity to GORM model.
// Moduli are bounded by math.MaxInt64 on derivation so the signed column is lossless.
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.P = k.P
	m.Q = k.Q
	m.Modulus = int64(k.Modulus)
	m.PublicExponent = k.PublicExponent
	m.PrivateExponent = k.PrivateExponent
	m.DateTimeCreated = k.DateTimeCreated
	m.UserID = k.UserID
}
