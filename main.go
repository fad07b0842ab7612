package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/api/v1"
	"github.com/javatech/cim-portal/config"
	"github.com/javatech/cim-portal/database"
	"github.com/javatech/cim-portal/logger"
	"github.com/javatech/cim-portal/metrics"
	"github.com/javatech/cim-portal/ws"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	logger.Init(cfg.Env)

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migrate")
	}

	hub := ws.NewHub()
	go hub.Run()

	router := gin.New()
	router.Use(gin.Recovery(), metrics.GinMiddleware())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, db, cfg, hub)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("CIM portal backend starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}
