package api

import (
	"log"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/relay/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	chat_module "github.com/ethanbaker/relay/internal/api/modules/chat"
	health_module "github.com/ethanbaker/relay/internal/api/modules/health"
)

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes are registered at the root so the chat endpoint is exactly /chat
	baseGroup := engine.Group("")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	chat_module.RegisterRoutes(baseGroup)
	chat_module.Init(cfg)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
