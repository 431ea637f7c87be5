package server

import (
	"context"
	"net/http"

	"github.com/tlopesdev-arch/simulado-V3/internal/api"
	"github.com/tlopesdev-arch/simulado-V3/internal/checkout"
	"github.com/tlopesdev-arch/simulado-V3/internal/config"
	"github.com/tlopesdev-arch/simulado-V3/internal/webhook"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

func New(cfg *config.Config, checkoutHandler *checkout.Handler, webhookHandler *webhook.Handler) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	// One 405 policy for both endpoints: JSON body, not an empty status.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, api.ErrorResponse{Error: "method not allowed"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/create-preference", checkoutHandler.Create)
		apiGroup.POST("/webhook", webhookHandler.Receive)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{router: router, config: cfg}
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
