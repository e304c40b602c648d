package api

import (
	"github.com/complaintiq/classifier/internal/domain"
)

// PredictRequest is a single prediction request.
type PredictRequest struct {
	Text string `json:"text" binding:"required"`
}

// PredictResponse is a single prediction response. Stub is set when the
// answer came from the fallback predictor rather than a trained model.
type PredictResponse struct {
	domain.PredictionResult
	Stub bool `json:"stub,omitempty"`
}

// BatchPredictRequest is a batch prediction request.
type BatchPredictRequest struct {
	Texts []string `json:"texts" binding:"required,min=1,max=500"`
}

// BatchPredictResponse is a batch prediction response. Results preserve
// request order; failed items carry a per-item error.
type BatchPredictResponse struct {
	Results []domain.BatchPredictionItem `json:"results"`
	Total   int                          `json:"total"`
	Success int                          `json:"success"`
	Failed  int                          `json:"failed"`
	Stub    bool                         `json:"stub,omitempty"`
}

// ComplaintRequest submits one complaint for collection. Category is
// optional; when absent the keyword categorizer assigns one.
type ComplaintRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// ComplaintResponse returns the stored record.
type ComplaintResponse struct {
	Record domain.ComplaintRecord `json:"record"`
}

// BatchComplaintRequest submits several complaints at once.
type BatchComplaintRequest struct {
	Complaints []ComplaintRequest `json:"complaints" binding:"required,min=1,max=1000"`
}

// BatchComplaintResponse reports per-item collection outcomes in request
// order.
type BatchComplaintResponse struct {
	Results []ComplaintItemResult `json:"results"`
	Total   int                   `json:"total"`
	Success int                   `json:"success"`
	Failed  int                   `json:"failed"`
}

// ComplaintItemResult is one entry in a batch collection response.
type ComplaintItemResult struct {
	Index  int                     `json:"index"`
	Record *domain.ComplaintRecord `json:"record,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// UploadResponse reports a CSV import.
type UploadResponse struct {
	Imported    int `json:"imported"`
	DatasetSize int `json:"dataset_size"`
}

// TrainResponse returns the evaluation report of a completed training run.
type TrainResponse struct {
	Result *domain.TrainingResult `json:"result"`
}

// CategoryInfo describes one taxonomy category.
type CategoryInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Keywords    []string `json:"keywords"`
}

// CategoriesResponse lists the taxonomy category names in declaration order.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Total      int      `json:"total"`
}

// CategoriesInfoResponse lists full category definitions.
type CategoriesInfoResponse struct {
	Categories []CategoryInfo `json:"categories"`
	Total      int            `json:"total"`
}

// ModelInfoResponse describes the active model.
type ModelInfoResponse struct {
	Trained      bool                   `json:"trained"`
	ModelType    string                 `json:"model_type,omitempty"`
	Categories   []string               `json:"categories"`
	FeatureCount int                    `json:"feature_count,omitempty"`
	Result       *domain.TrainingResult `json:"training_result,omitempty"`
}

// StatsResponse reports dataset statistics.
type StatsResponse struct {
	TotalRecords   int            `json:"total_records"`
	UniqueRecords  int            `json:"unique_records"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// ComplaintsResponse lists the de-duplicated dataset snapshot.
type ComplaintsResponse struct {
	Total      int                      `json:"total"`
	Complaints []domain.ComplaintRecord `json:"complaints"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
