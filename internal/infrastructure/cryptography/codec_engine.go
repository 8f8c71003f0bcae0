package cryptography

import (
	"fmt"
	"unicode/utf8"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// TransformSymbol raises a single byte to key modulo modulus.
// Symbols at or above the modulus, and results that would not fit back into a byte, are
// rejected instead of being truncated.
func TransformSymbol(c byte, key cryptoalg.Key, modulus uint64) (byte, error) {
	if modulus == 0 {
		return 0, cryptoalg.ErrZeroModulus
	}
	if uint64(c) >= modulus {
		return 0, fmt.Errorf("symbol %d >= modulus %d: %w", c, modulus, cryptoalg.ErrSymbolOutOfRange)
	}

	v, err := ModPow(uint64(c), key, modulus)
	if err != nil {
		return 0, err
	}
	if v >= cryptoalg.MaxByteModulus {
		return 0, fmt.Errorf("transformed symbol %d does not fit a byte: %w", v, cryptoalg.ErrSymbolOutOfRange)
	}
	return byte(v), nil
}

// TransformText applies TransformSymbol to every symbol, preserving order and length.
func TransformText(s []byte, key cryptoalg.Key, modulus uint64) ([]byte, error) {
	out := make([]byte, len(s))
	for i, c := range s {
		t, err := TransformSymbol(c, key, modulus)
		if err != nil {
			return nil, fmt.Errorf("symbol at offset %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}

// EncodeText returns the UTF-8 bytes of s.
func EncodeText(s string) []byte {
	return []byte(s)
}

// DecodeText turns bytes back into text, failing on invalid UTF-8.
func DecodeText(b []byte) (string, error) {
	for offset := 0; offset < len(b); {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return "", &cryptoalg.EncodingError{Offset: offset}
		}
		offset += size
	}
	return string(b), nil
}
