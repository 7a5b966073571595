package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo/passmeter_backend/internal/scoring"
)

// Server hosts the password strength scoring and generation API
type Server struct {
	router *gin.Engine
	scorer *scoring.Scorer
	config *Config

	// Last generated password per session. The interactive page keeps this
	// state between the generate and copy interactions; here it is explicit
	// and request-scoped.
	sessions     map[string]generatedPassword
	sessionMutex sync.RWMutex

	httpServer *http.Server
}

type generatedPassword struct {
	password  string
	timestamp time.Time
}

// NewServer creates a new HTTP server exposing the scoring and generation API
func NewServer(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	router := gin.New()

	server := &Server{
		router:   router,
		scorer:   scoring.NewScorer(),
		config:   config,
		sessions: make(map[string]generatedPassword),
	}

	// Middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(ErrorHandler())
	router.Use(server.corsMiddleware())

	// Setup routes
	router.GET("/api/health", server.healthHandler)
	router.POST("/api/password/score", server.scoreHandler)
	router.POST("/api/password/generate", server.generateHandler)
	router.GET("/api/password/generated/:session", server.generatedPasswordHandler)
	router.GET("/ws/score", server.handleScoreWebSocket)

	return server
}

// corsMiddleware allows the separately hosted page to call the API
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", s.config.AllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
