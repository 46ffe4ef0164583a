package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/WilianUno/gestor-autonomo/internal/config"
	dbpkg "github.com/WilianUno/gestor-autonomo/internal/db"
	"github.com/WilianUno/gestor-autonomo/internal/routes"
	"github.com/WilianUno/gestor-autonomo/internal/timezone"
)

const apiVersion = "1.0.0"

func main() {

	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "API Agenda Pro - Backend funcionando!",
			"version":   apiVersion,
			"timestamp": timezone.NowIn(cfg.Timezone).Format(time.RFC3339),
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("servidor iniciado")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("falha ao iniciar o servidor")
	}
}
