package server

import (
	"net/http"

	"github.com/tlopesdev-arch/simulado-V3/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// Metrics exposes Prometheus metrics in text format.
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
