package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"sort"

	"mangosense/internal/classifier"
	"mangosense/internal/domain/prediction"
	"mangosense/internal/storage"
	mango_errors "mangosense/pkg/errors"
	"mangosense/pkg/logger"

	"github.com/disintegration/imaging"
)

const (
	// ImgSize is the spatial resolution the model expects.
	ImgSize = 224
	// MaxImageBytes caps uploads from the mobile app.
	MaxImageBytes = 5 * 1024 * 1024
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// InferenceService runs one uploaded image through the classifier:
// validate, preprocess, score, rank. Each call is independent; the only
// shared state is the read-only model handle.
type InferenceService struct {
	model    *classifier.Handle
	archiver *storage.Archiver // optional, best effort
	logger   *logger.Logger
}

func NewInferenceService(model *classifier.Handle, archiver *storage.Archiver, l *logger.Logger) *InferenceService {
	return &InferenceService{model: model, archiver: archiver, logger: l}
}

// ModelStatus is the read-only introspection of the classifier handle.
type ModelStatus struct {
	ModelLoaded               bool     `json:"model_loaded"`
	ModelPath                 string   `json:"model_path"`
	ClassNames                []string `json:"class_names"`
	ClassNamesCount           int      `json:"class_names_count"`
	TreatmentSuggestionsCount int      `json:"treatment_suggestions_count"`
}

// Classify validates and scores one uploaded image. declaredType is the
// content type the client claimed for the multipart part.
func (s *InferenceService) Classify(ctx context.Context, data []byte, declaredType string) (prediction.Result, error) {
	if len(data) > MaxImageBytes {
		return prediction.Result{}, mango_errors.ErrTooLarge
	}
	if !allowedImageTypes[declaredType] {
		return prediction.Result{}, mango_errors.ErrInvalidInput
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return prediction.Result{}, mango_errors.ErrInvalidImage
	}

	if !s.model.Loaded() {
		return prediction.Result{}, mango_errors.ErrModelUnavailable
	}

	tensor := preprocess(img)

	probs, err := s.model.Predict(tensor)
	if err != nil {
		return prediction.Result{}, err
	}
	if len(probs) < 3 {
		return prediction.Result{}, fmt.Errorf("model returned %d class probabilities", len(probs))
	}

	result := rank(probs)

	if s.archiver != nil {
		if _, err := s.archiver.Put(ctx, data, declaredType); err != nil && s.logger != nil {
			s.logger.Warnf("failed to archive prediction image: %s", err)
		}
	}

	return result, nil
}

// Status never fails; it reports whatever the handle observes.
func (s *InferenceService) Status() ModelStatus {
	return ModelStatus{
		ModelLoaded:               s.model.Loaded(),
		ModelPath:                 s.model.ModelPath(),
		ClassNames:                prediction.ClassNames,
		ClassNamesCount:           len(prediction.ClassNames),
		TreatmentSuggestionsCount: prediction.TreatmentCount(),
	}
}

// preprocess decodes to 3-channel RGB at ImgSize x ImgSize and flattens to a
// NHWC float32 tensor with batch dimension 1. The EfficientNet export bakes
// input scaling into the graph, so pixel values stay in [0, 255].
func preprocess(img image.Image) []float32 {
	resized := imaging.Resize(img, ImgSize, ImgSize, imaging.Lanczos)

	tensor := make([]float32, ImgSize*ImgSize*3)
	i := 0
	for y := 0; y < ImgSize; y++ {
		for x := 0; x < ImgSize; x++ {
			offset := resized.PixOffset(x, y)
			tensor[i] = float32(resized.Pix[offset])
			tensor[i+1] = float32(resized.Pix[offset+1])
			tensor[i+2] = float32(resized.Pix[offset+2])
			i += 3
		}
	}
	return tensor
}

// rank sorts classes by probability descending and keeps the top 3.
func rank(probs []float32) prediction.Result {
	indices := make([]int, len(probs))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return probs[indices[a]] > probs[indices[b]]
	})

	top3 := make([]prediction.Prediction, 0, 3)
	for i, idx := range indices[:3] {
		confidence := round2(float64(probs[idx]) * 100)
		disease := fmt.Sprintf("Unknown_%d", idx)
		if idx < len(prediction.ClassNames) {
			disease = prediction.ClassNames[idx]
		}
		top3 = append(top3, prediction.Prediction{
			Rank:                i + 1,
			Disease:             disease,
			Confidence:          confidence,
			ConfidenceFormatted: fmt.Sprintf("%.2f%%", confidence),
			Treatment:           prediction.TreatmentFor(disease),
		})
	}

	primary := top3[0]
	return prediction.Result{
		Primary: primary,
		Top3:    top3,
		Summary: prediction.Summary{
			MostLikely:           primary.Disease,
			ConfidenceLevel:      prediction.ConfidenceLevel(primary.Confidence),
			TotalDiseasesChecked: len(prediction.ClassNames),
		},
		ImageShape: []int{1, ImgSize, ImgSize, 3},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
