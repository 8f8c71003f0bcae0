//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const demoKeyPairID = "demo"

func newTestProtocolService(t *testing.T) (keys.ProtocolService, *mockKeyPairRepository) {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	processor, err := cryptography.NewTextbookRSAProcessor(nil, logger)
	require.NoError(t, err)

	repo := &mockKeyPairRepository{}
	repo.On("GetByID", mock.Anything, demoKeyPairID).Return(&keys.KeyPairMeta{
		ID: demoKeyPairID, P: 13, Q: 7, Modulus: 91, PublicExponent: 5, PrivateExponent: 29,
	}, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, keys.ErrNotFound)

	service, err := NewProtocolService(processor, repo, logger)
	require.NoError(t, err)
	return service, repo
}

func TestProtocolService_EncryptDecrypt(t *testing.T) {
	service, _ := newTestProtocolService(t)
	ctx := context.Background()

	cipherText, err := service.Encrypt(ctx, demoKeyPairID, "\x03")
	require.NoError(t, err)
	assert.Equal(t, []byte{61}, cipherText)

	plainText, err := service.Decrypt(ctx, demoKeyPairID, cipherText)
	require.NoError(t, err)
	assert.Equal(t, "\x03", plainText)
}

func TestProtocolService_EncryptSymbolOutOfRange(t *testing.T) {
	service, _ := newTestProtocolService(t)

	_, err := service.Encrypt(context.Background(), demoKeyPairID, "hello")
	assert.ErrorIs(t, err, cryptoalg.ErrSymbolOutOfRange)
}

func TestProtocolService_SignVerify(t *testing.T) {
	service, _ := newTestProtocolService(t)
	ctx := context.Background()

	signature, err := service.Sign(ctx, demoKeyPairID, cryptoalg.DemoMessage)
	require.NoError(t, err)

	valid, err := service.Verify(ctx, demoKeyPairID, cryptoalg.DemoMessage, signature)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = service.Verify(ctx, demoKeyPairID, "HELLO!", signature)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestProtocolService_RoundTrip(t *testing.T) {
	service, _ := newTestProtocolService(t)

	report, err := service.RoundTrip(context.Background(), demoKeyPairID, cryptoalg.DemoMessage)
	require.NoError(t, err)
	assert.Equal(t, demoKeyPairID, report.KeyPairID)
	assert.Equal(t, cryptoalg.DemoMessage, report.Message)
	assert.True(t, report.EncryptionSucceeded)
	assert.True(t, report.SignatureSucceeded)
	assert.Len(t, report.CipherText, len(cryptoalg.DemoMessage))
	assert.NotEmpty(t, report.Signature)
}

func TestProtocolService_UnknownKeyPair(t *testing.T) {
	service, _ := newTestProtocolService(t)
	ctx := context.Background()

	_, err := service.Encrypt(ctx, "missing", "HI")
	assert.ErrorIs(t, err, keys.ErrNotFound)
	_, err = service.Decrypt(ctx, "missing", []byte{1})
	assert.ErrorIs(t, err, keys.ErrNotFound)
	_, err = service.Sign(ctx, "missing", "HI")
	assert.ErrorIs(t, err, keys.ErrNotFound)
	_, err = service.Verify(ctx, "missing", "HI", []byte{1})
	assert.ErrorIs(t, err, keys.ErrNotFound)
	_, err = service.RoundTrip(ctx, "missing", "HI")
	assert.ErrorIs(t, err, keys.ErrNotFound)
}
