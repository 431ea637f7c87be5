package server

import (
	"net/http/httptest"
	"testing"

	"github.com/tlopesdev-arch/simulado-V3/internal/checkout"
	"github.com/tlopesdev-arch/simulado-V3/internal/config"
	"github.com/tlopesdev-arch/simulado-V3/internal/webhook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Port: "8080"}
	// Handlers are never reached by these tests, so nil clients are fine.
	return New(cfg, checkout.NewHandler(nil, ""), webhook.NewHandler(nil, nil))
}

func TestHealth(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestMethodNotAllowed_JSONBody(t *testing.T) {
	srv := newTestServer()

	for _, path := range []string{"/api/create-preference", "/api/webhook"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		assert.Equal(t, 405, w.Code, path)
		assert.JSONEq(t, `{"error": "method not allowed"}`, w.Body.String(), path)
	}
}

func TestUnknownRoute_NotFound(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/nope", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}
