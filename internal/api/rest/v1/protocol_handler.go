package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// ProtocolHandler defines the interface for the encryption and signature endpoints
type ProtocolHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	RoundTrip(ctx *gin.Context)
}

type protocolHandler struct {
	protocolService keys.ProtocolService
}

// NewProtocolHandler creates a new ProtocolHandler
func NewProtocolHandler(protocolService keys.ProtocolService) ProtocolHandler {
	return &protocolHandler{
		protocolService: protocolService,
	}
}

// bindRequest decodes and validates the JSON body, writing a 400 response on failure
func bindRequest(ctx *gin.Context, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return false
	}
	return true
}

// Encrypt handles the POST request encrypting plaintext with a stored key pair
// @Summary Encrypt plaintext
// @Tags Protocol
// @Accept json
// @Produce json
// @Param id path string true "Key Pair ID"
// @Param requestBody body EncryptRequest true "Plaintext"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *protocolHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindRequest(ctx, &request) {
		return
	}

	cipherText, err := handler.protocolService.Encrypt(ctx, ctx.Param("id"), request.PlainText)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error encrypting: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{CipherText: toSymbols(cipherText)})
}

// Decrypt handles the POST request decrypting ciphertext with a stored key pair
// @Summary Decrypt ciphertext
// @Tags Protocol
// @Accept json
// @Produce json
// @Param id path string true "Key Pair ID"
// @Param requestBody body DecryptRequest true "Ciphertext symbols"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *protocolHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindRequest(ctx, &request) {
		return
	}

	plainText, err := handler.protocolService.Decrypt(ctx, ctx.Param("id"), fromSymbols(request.CipherText))
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error decrypting: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{PlainText: plainText})
}

// Sign handles the POST request signing a message with a stored key pair
// @Summary Sign a message
// @Tags Protocol
// @Accept json
// @Produce json
// @Param id path string true "Key Pair ID"
// @Param requestBody body SignRequest true "Message"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/sign [post]
func (handler *protocolHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bindRequest(ctx, &request) {
		return
	}

	signature, err := handler.protocolService.Sign(ctx, ctx.Param("id"), request.Message)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error signing: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: toSymbols(signature)})
}

// Verify handles the POST request checking a signature with a stored key pair
// @Summary Verify a signature
// @Tags Protocol
// @Accept json
// @Produce json
// @Param id path string true "Key Pair ID"
// @Param requestBody body VerifyRequest true "Message and signature symbols"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/verify [post]
func (handler *protocolHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindRequest(ctx, &request) {
		return
	}

	valid, err := handler.protocolService.Verify(ctx, ctx.Param("id"), request.Message, fromSymbols(request.Signature))
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error verifying: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

// RoundTrip handles the POST request running both round trips with a stored key pair
// @Summary Run the encryption and signature round trips
// @Tags Protocol
// @Accept json
// @Produce json
// @Param id path string true "Key Pair ID"
// @Param requestBody body RoundTripRequest false "Message"
// @Success 200 {object} RoundTripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/roundtrip [post]
func (handler *protocolHandler) RoundTrip(ctx *gin.Context) {
	var request RoundTripRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}
	}
	if request.Message == "" {
		request.Message = cryptoalg.DemoMessage
	}

	report, err := handler.protocolService.RoundTrip(ctx, ctx.Param("id"), request.Message)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error running round trip: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, RoundTripResponse{
		KeyPairID:           report.KeyPairID,
		Message:             report.Message,
		CipherText:          toSymbols(report.CipherText),
		Signature:           toSymbols(report.Signature),
		EncryptionSucceeded: report.EncryptionSucceeded,
		SignatureSucceeded:  report.SignatureSucceeded,
	})
}
