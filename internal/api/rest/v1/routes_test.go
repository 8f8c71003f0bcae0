//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	SetupRoutes(r, new(MockKeyPairService), new(MockProtocolService))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST " + BasePath + "/keys",
		"POST " + BasePath + "/keys/generate",
		"GET " + BasePath + "/keys",
		"GET " + BasePath + "/keys/:id",
		"DELETE " + BasePath + "/keys/:id",
		"POST " + BasePath + "/keys/:id/encrypt",
		"POST " + BasePath + "/keys/:id/decrypt",
		"POST " + BasePath + "/keys/:id/sign",
		"POST " + BasePath + "/keys/:id/verify",
		"POST " + BasePath + "/keys/:id/roundtrip",
	} {
		assert.True(t, registered[want], "route %s should be registered", want)
	}
}

// TestSetupRoutes_InvalidRoute verifies unregistered routes return 404
func TestSetupRoutes_InvalidRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	SetupRoutes(r, new(MockKeyPairService), new(MockProtocolService))

	req, _ := http.NewRequest(http.MethodGet, BasePath+"/blobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestSetupRoutes_BadRequestBeforeService verifies body validation runs before any service call
func TestSetupRoutes_BadRequestBeforeService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protocolService := new(MockProtocolService)
	SetupRoutes(r, new(MockKeyPairService), protocolService)

	req, _ := http.NewRequest(http.MethodPost, BasePath+"/keys/abc/encrypt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	protocolService.AssertNumberOfCalls(t, "Encrypt", 0)
}
