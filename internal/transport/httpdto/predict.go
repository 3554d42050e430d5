package httpdto

import "mangosense/internal/domain/prediction"

// PrimaryPrediction is the rank-1 entry, with the confidence duplicated as
// formatted text and raw score the way the mobile UI consumes it.
type PrimaryPrediction struct {
	Disease         string  `json:"disease"`
	Confidence      string  `json:"confidence"`
	ConfidenceScore float64 `json:"confidence_score"`
	Treatment       string  `json:"treatment"`
}

// DebugInfo is observability metadata; nothing in it drives decisions.
type DebugInfo struct {
	ModelLoaded     bool  `json:"model_loaded"`
	ClassNamesCount int   `json:"class_names_count"`
	ImageSize       []int `json:"image_size"`
}

// PredictResponse is returned by POST /predict
type PredictResponse struct {
	Success           bool                    `json:"success"`
	PrimaryPrediction PrimaryPrediction       `json:"primary_prediction"`
	Top3Predictions   []prediction.Prediction `json:"top_3_predictions"`
	PredictionSummary prediction.Summary      `json:"prediction_summary"`
	Timestamp         string                  `json:"timestamp"`
	DebugInfo         DebugInfo               `json:"debug_info"`
}

// ModelStatusDTO mirrors the classifier handle introspection
type ModelStatusDTO struct {
	ModelLoaded               bool     `json:"model_loaded"`
	ModelPath                 string   `json:"model_path"`
	ClassNames                []string `json:"class_names"`
	ClassNamesCount           int      `json:"class_names_count"`
	TreatmentSuggestionsCount int      `json:"treatment_suggestions_count"`
}

// ModelStatusResponse is returned by GET /test-model
type ModelStatusResponse struct {
	Success           bool           `json:"success"`
	ModelStatus       ModelStatusDTO `json:"model_status"`
	AvailableDiseases []string       `json:"available_diseases"`
	ImgSize           []int          `json:"img_size"`
}
