package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyHandler defines the interface for handling key-pair operations
type KeyHandler interface {
	Derive(ctx *gin.Context)
	Generate(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type keyHandler struct {
	keyPairService keys.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// Derive handles the POST request deriving a key pair from caller-supplied primes
// @Summary Derive a key pair
// @Description Derive the private exponent for the given primes and public exponent and store the key pair.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body DeriveKeyPairRequest true "Primes and public exponent"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Derive(ctx *gin.Context) {
	var request DeriveKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key pair data: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	userID := uuid.NewString() // TODO(MGTheTrain): extract user id from JWT

	keyPair, err := handler.keyPairService.Derive(ctx, userID, request.P, request.Q, request.PublicExponent)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error deriving key pair: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, newKeyPairResponse(keyPair))
}

// Generate handles the POST request generating a key pair from sampled primes
// @Summary Generate a key pair
// @Description Sample primes within the configured bounds, derive a key pair and store it.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest false "Optional public exponent"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/generate [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key pair data: %v", err))
			return
		}
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	userID := uuid.NewString() // TODO(MGTheTrain): extract user id from JWT

	keyPair, err := handler.keyPairService.Generate(ctx, userID, request.PublicExponent)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error generating key pair: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, newKeyPairResponse(keyPair))
}

// List handles the GET request listing stored key pairs
// @Summary List key pairs based on query parameters
// @Description Fetch key pairs filtered by modulus, public exponent, user and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param modulus query int false "Modulus"
// @Param publicExponent query int false "Public exponent"
// @Param userId query string false "Owner"
// @Param dateTimeCreated query string false "Key Pair Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by date_time_created, modulus or public_exponent"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) List(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	if modulus := ctx.Query("modulus"); len(modulus) > 0 {
		parsed, err := utils.ConvertToUint64("modulus", modulus)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		query.Modulus = parsed
	}

	if publicExponent := ctx.Query("publicExponent"); len(publicExponent) > 0 {
		parsed, err := utils.ConvertToInt64("publicExponent", publicExponent)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		query.PublicExponent = parsed
	}

	if userID := ctx.Query("userId"); len(userID) > 0 {
		query.UserID = userID
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid dateTimeCreated: %v", err))
			return
		}
		query.DateTimeCreated = parsedTime
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		parsed, err := utils.ConvertToInt("limit", limit)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		query.Limit = parsed
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		parsed, err := utils.ConvertToInt("offset", offset)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		query.Offset = parsed
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	keyPairs, err := handler.keyPairService.List(ctx, query)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("list query failed: %v", err))
		return
	}

	listResponse := []KeyPairResponse{}
	for _, keyPair := range keyPairs {
		listResponse = append(listResponse, newKeyPairResponse(keyPair))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request retrieving a key pair by ID
// @Summary Retrieve a key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key Pair ID"
// @Success 200 {object} KeyPairResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	keyPair, err := handler.keyPairService.GetByID(ctx, keyPairID)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error retrieving key pair %s: %v", keyPairID, err))
		return
	}

	ctx.JSON(http.StatusOK, newKeyPairResponse(keyPair))
}

// DeleteByID handles the DELETE request removing a key pair by ID
// @Summary Delete a key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key Pair ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	if err := handler.keyPairService.DeleteByID(ctx, keyPairID); err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error deleting key pair %s: %v", keyPairID, err))
		return
	}

	ctx.Status(http.StatusNoContent)
	ctx.Writer.WriteHeaderNow()
}
