// Package server exposes the engine over HTTP.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"shrine-engine/config"
)

// Server holds what the handlers share. Every search gets its own Searcher,
// so a Server can serve concurrent requests.
type Server struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewRouter builds the HTTP router.
func NewRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	s := &Server{cfg: cfg, log: log}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)
	router.POST("/bestmove", s.BestMove)
	router.POST("/legalmoves", s.LegalMoves)
	router.POST("/evaluate", s.Evaluate)
	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
