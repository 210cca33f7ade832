package routes

import (
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "orcamentos_api/docs" // This will be auto-generated
	"orcamentos_api/internal/adapter/http/middleware"
	"orcamentos_api/pkg/logger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := envPort(); v != "" {
		port = v
	}

	if err := router.Run(":" + port); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func setMiddlewares() {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RequestTimeout())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))

	prom := ginprometheus.NewPrometheus("orcamentos_api")
	prom.Use(router)
}
