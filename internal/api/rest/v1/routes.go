package v1

import (
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyPairService keys.KeyPairService, protocolService keys.ProtocolService) {
	v1 := r.Group(BasePath) // lookup in version file

	keyHandler := NewKeyHandler(keyPairService)
	v1.POST("/keys", keyHandler.Derive)
	v1.POST("/keys/generate", keyHandler.Generate)
	v1.GET("/keys", keyHandler.List)
	v1.GET("/keys/:id", keyHandler.GetByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	protocolHandler := NewProtocolHandler(protocolService)
	v1.POST("/keys/:id/encrypt", protocolHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", protocolHandler.Decrypt)
	v1.POST("/keys/:id/sign", protocolHandler.Sign)
	v1.POST("/keys/:id/verify", protocolHandler.Verify)
	v1.POST("/keys/:id/roundtrip", protocolHandler.RoundTrip)
}
