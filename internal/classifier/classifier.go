// Package classifier wraps the pre-trained leaf disease model. The model is
// loaded once at bootstrap and the resulting handle is shared read-only by
// every inference request.
package classifier

import (
	mango_errors "mangosense/pkg/errors"
)

// Classifier turns a preprocessed image tensor into one probability per
// disease class. Implementations must be safe for concurrent use.
type Classifier interface {
	Predict(input []float32) ([]float32, error)
}

// Handle is the process-wide classifier state. A failed load is recorded
// rather than fatal: /predict degrades to an error response and /test-model
// reports model_loaded:false.
type Handle struct {
	model     Classifier
	modelPath string
	loadErr   error
}

// NewHandle wraps an already-constructed classifier, primarily for tests.
func NewHandle(model Classifier, modelPath string) *Handle {
	return &Handle{model: model, modelPath: modelPath}
}

// NewUnloadedHandle records a load failure.
func NewUnloadedHandle(modelPath string, loadErr error) *Handle {
	return &Handle{modelPath: modelPath, loadErr: loadErr}
}

// Loaded reports whether the model is available for scoring.
func (h *Handle) Loaded() bool {
	return h != nil && h.model != nil
}

// ModelPath returns the configured model location.
func (h *Handle) ModelPath() string {
	if h == nil {
		return ""
	}
	return h.modelPath
}

// LoadError returns the startup load failure, if any.
func (h *Handle) LoadError() error {
	if h == nil {
		return nil
	}
	return h.loadErr
}

// Predict scores a tensor, or fails with ErrModelUnavailable when the model
// never loaded.
func (h *Handle) Predict(input []float32) ([]float32, error) {
	if !h.Loaded() {
		return nil, mango_errors.ErrModelUnavailable
	}
	return h.model.Predict(input)
}
