package api

import (
	"github.com/gin-gonic/gin"

	"github.com/complaintiq/classifier/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, provider *telemetry.Provider) {
	// Health, readiness, and metrics
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(provider.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Prediction endpoints
		predict := v1.Group("/predict")
		{
			predict.POST("", handler.Predict)            // POST /api/v1/predict
			predict.POST("/batch", handler.PredictBatch) // POST /api/v1/predict/batch
		}

		// Taxonomy endpoints
		categories := v1.Group("/categories")
		{
			categories.GET("", handler.Categories)          // GET /api/v1/categories
			categories.GET("/info", handler.CategoriesInfo) // GET /api/v1/categories/info
		}

		// Dataset collection endpoints
		complaints := v1.Group("/complaints")
		{
			complaints.GET("", handler.ListComplaints)               // GET /api/v1/complaints
			complaints.POST("", handler.CollectComplaint)            // POST /api/v1/complaints
			complaints.POST("/batch", handler.CollectComplaintBatch) // POST /api/v1/complaints/batch
			complaints.POST("/upload", handler.UploadComplaints)     // POST /api/v1/complaints/upload
			complaints.GET("/export", handler.ExportDataset)         // GET /api/v1/complaints/export
		}

		// Training and model endpoints
		v1.POST("/train", handler.Train)    // POST /api/v1/train
		v1.GET("/info", handler.ModelInfo)  // GET /api/v1/info
		v1.GET("/stats", handler.Stats)     // GET /api/v1/stats
	}
}
