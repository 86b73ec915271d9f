package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"shrine-engine/config"
	"shrine-engine/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := cfg.Logs.Logger(os.Stderr)
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(cfg, log)
	log.Info().Str("addr", cfg.Server.Addr).Int("max_depth", cfg.Server.MaxDepth).Msg("listening")
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
