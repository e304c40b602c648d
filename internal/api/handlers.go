// Package api implements the HTTP handlers for the complaint classifier
// service.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/complaintiq/classifier/internal/categorizer"
	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/dataset"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/pipeline"
	"github.com/complaintiq/classifier/internal/predictor"
	"github.com/complaintiq/classifier/internal/telemetry"
)

// uploadSource labels records imported through the CSV upload endpoint.
const uploadSource = "csv_upload"

// Handler handles HTTP requests for the classifier API.
type Handler struct {
	cfg       *config.Config
	service   *predictor.Service
	pipe      *pipeline.Pipeline
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	cfg *config.Config,
	service *predictor.Service,
	pipe *pipeline.Pipeline,
	provider *telemetry.Provider,
	log logger.Logger,
) *Handler {
	return &Handler{
		cfg:       cfg,
		service:   service,
		pipe:      pipe,
		telemetry: provider,
		logger:    log,
	}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.cfg.Service.Name,
		"version": h.cfg.Service.Version,
	})
}

// ReadyCheck handles GET /ready. The service is ready even in stub mode;
// the response reports which mode is active.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ready",
		"model_trained": h.service.Trained(),
	})
}

// Predict handles POST /api/v1/predict.
func (h *Handler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid prediction request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	result, err := h.service.Predict(req.Text)
	if err != nil {
		if domain.IsValidationError(err) {
			h.telemetry.RecordPredictionFailure(c.Request.Context(), "validation")
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		h.telemetry.RecordPredictionFailure(c.Request.Context(), "internal")
		h.logger.Error("Prediction failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "prediction failed"})
		return
	}

	trained := h.service.Trained()
	h.telemetry.RecordPrediction(c.Request.Context(), predictionMode(trained), result.Prediction, time.Since(start))
	c.JSON(http.StatusOK, PredictResponse{
		PredictionResult: result,
		Stub:             !trained,
	})
}

// PredictBatch handles POST /api/v1/predict/batch.
func (h *Handler) PredictBatch(c *gin.Context) {
	var req BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch prediction request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.telemetry.RecordBatchSize(len(req.Texts))
	items := h.service.PredictBatch(c.Request.Context(), req.Texts)

	success := 0
	for _, item := range items {
		if item.Error == "" {
			success++
		}
	}
	c.JSON(http.StatusOK, BatchPredictResponse{
		Results: items,
		Total:   len(items),
		Success: success,
		Failed:  len(items) - success,
		Stub:    !h.service.Trained(),
	})
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(c *gin.Context) {
	names := categorizer.CategoryNames()
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: names,
		Total:      len(names),
	})
}

// CategoriesInfo handles GET /api/v1/categories/info.
func (h *Handler) CategoriesInfo(c *gin.Context) {
	definitions := categorizer.Definitions
	infos := make([]CategoryInfo, len(definitions))
	for i, def := range definitions {
		infos[i] = CategoryInfo{
			Name:        def.Name,
			Description: def.Description,
			Priority:    string(def.Priority),
			Keywords:    def.Keywords,
		}
	}
	c.JSON(http.StatusOK, CategoriesInfoResponse{
		Categories: infos,
		Total:      len(infos),
	})
}

// CollectComplaint handles POST /api/v1/complaints.
func (h *Handler) CollectComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid complaint request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.collectOne(c, req)
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("Complaint collection failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "collection failed"})
		return
	}
	c.JSON(http.StatusCreated, ComplaintResponse{Record: record})
}

// CollectComplaintBatch handles POST /api/v1/complaints/batch.
func (h *Handler) CollectComplaintBatch(c *gin.Context) {
	var req BatchComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch complaint request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	results := make([]ComplaintItemResult, len(req.Complaints))
	success := 0
	for i, item := range req.Complaints {
		results[i].Index = i
		record, err := h.collectOne(c, item)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		results[i].Record = &record
		success++
	}
	c.JSON(http.StatusOK, BatchComplaintResponse{
		Results: results,
		Total:   len(results),
		Success: success,
		Failed:  len(results) - success,
	})
}

func (h *Handler) collectOne(c *gin.Context, req ComplaintRequest) (domain.ComplaintRecord, error) {
	source := req.Source
	if source == "" {
		source = "api"
	}
	record, err := h.pipe.Collect(req.Text, req.Category, source)
	if err != nil {
		return domain.ComplaintRecord{}, err
	}
	h.telemetry.RecordCollection(c.Request.Context(), source, len(h.pipe.Dataset().Snapshot()))
	return record, nil
}

// UploadComplaints handles POST /api/v1/complaints/upload with a multipart
// CSV file under the "file" field.
func (h *Handler) UploadComplaints(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file upload field \"file\""})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Opening uploaded file failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "reading upload failed"})
		return
	}
	defer file.Close()

	imported, err := dataset.ImportCSV(file, h.pipe.Dataset(), uploadSource)
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("CSV import failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "import failed"})
		return
	}

	size := len(h.pipe.Dataset().Snapshot())
	h.logger.Info("CSV import complete",
		logger.String("filename", fileHeader.Filename),
		logger.Int("imported", imported),
		logger.Int("dataset_size", size),
	)
	c.JSON(http.StatusOK, UploadResponse{
		Imported:    imported,
		DatasetSize: size,
	})
}

// Train handles POST /api/v1/train.
func (h *Handler) Train(c *gin.Context) {
	start := time.Now()
	result, err := h.pipe.Train()
	if err != nil {
		h.telemetry.RecordTraining(c.Request.Context(), "failure", time.Since(start), 0)
		if domain.IsTrainingDataInsufficient(err) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("Training failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "training failed"})
		return
	}

	h.telemetry.RecordTraining(c.Request.Context(), "success", time.Since(start), result.TestAccuracy)
	h.telemetry.SetModelTrained(true)
	c.JSON(http.StatusOK, TrainResponse{Result: result})
}

// ModelInfo handles GET /api/v1/info.
func (h *Handler) ModelInfo(c *gin.Context) {
	active := h.service.Active()
	resp := ModelInfoResponse{
		Trained:    active.Trained(),
		Categories: active.Categories(),
	}
	if trained, ok := active.(*predictor.TrainedPredictor); ok {
		meta := trained.Bundle().Metadata
		resp.ModelType = meta.ModelType
		resp.FeatureCount = meta.FeatureCount
		resp.Result = meta.Result
	}
	c.JSON(http.StatusOK, resp)
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(c *gin.Context) {
	data := h.pipe.Dataset()
	c.JSON(http.StatusOK, StatsResponse{
		TotalRecords:   data.Len(),
		UniqueRecords:  len(data.Snapshot()),
		CategoryCounts: data.CategoryCounts(),
	})
}

// ListComplaints handles GET /api/v1/complaints.
func (h *Handler) ListComplaints(c *gin.Context) {
	snapshot := h.pipe.Dataset().Snapshot()
	c.JSON(http.StatusOK, ComplaintsResponse{
		Total:      len(snapshot),
		Complaints: snapshot,
	})
}

// ExportDataset handles GET /api/v1/complaints/export as CSV.
func (h *Handler) ExportDataset(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="complaints.csv"`)
	if err := dataset.ExportCSV(c.Writer, h.pipe.Dataset()); err != nil {
		h.logger.Error("CSV export failed", logger.Error(err))
	}
}

func predictionMode(trained bool) string {
	if trained {
		return "trained"
	}
	return "stub"
}
