// Package prediction holds the disease classes the model scores and the
// per-request result types built from its output.
package prediction

// Prediction is one ranked entry of a classification result.
type Prediction struct {
	Rank                int     `json:"rank"`
	Disease             string  `json:"disease"`
	Confidence          float64 `json:"confidence"`
	ConfidenceFormatted string  `json:"confidence_formatted"`
	Treatment           string  `json:"treatment"`
}

// Summary describes the rank-1 entry for display purposes only.
type Summary struct {
	MostLikely           string `json:"most_likely"`
	ConfidenceLevel      string `json:"confidence_level"`
	TotalDiseasesChecked int    `json:"total_diseases_checked"`
}

// Result is the full outcome of scoring one image.
type Result struct {
	Primary    Prediction
	Top3       []Prediction
	Summary    Summary
	ImageShape []int
}

// ConfidenceLevel buckets a percentage score for display.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence > 80:
		return "High"
	case confidence > 60:
		return "Medium"
	default:
		return "Low"
	}
}
