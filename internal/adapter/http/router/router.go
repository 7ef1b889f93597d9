package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/client"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/http/handler"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/http/middleware"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(modelClient *client.ModelClient, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(modelClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize the classifier port and usecase
	classifier := client.NewSentimentClassifier(modelClient)
	analyzeUC := usecase.NewAnalyzeUsecase(classifier)

	// Analysis endpoint
	analyzeHandler := handler.NewAnalyzeHandler(analyzeUC)
	router.POST("/analyze", analyzeHandler.Analyze)

	return router
}
