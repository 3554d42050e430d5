package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"mangosense/internal/services"
	"mangosense/internal/transport/httpdto"
	mango_errors "mangosense/pkg/errors"

	"github.com/gin-gonic/gin"
)

// InferenceHandler handles image classification endpoints.
type InferenceHandler struct {
	service *services.InferenceService
}

func NewInferenceHandler(service *services.InferenceService) *InferenceHandler {
	return &InferenceHandler{service: service}
}

// Predict accepts a multipart image upload and returns ranked predictions.
func (h *InferenceHandler) Predict(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("No image uploaded"))
		return
	}

	// Reject oversized uploads before buffering the body.
	if fileHeader.Size > services.MaxImageBytes {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Image size must be less than 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(fmt.Sprintf("Prediction failed: %s", err)))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(fmt.Sprintf("Prediction failed: %s", err)))
		return
	}

	result, err := h.service.Classify(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		writePredictError(c, err)
		return
	}

	status := h.service.Status()
	c.JSON(http.StatusOK, httpdto.PredictResponse{
		Success: true,
		PrimaryPrediction: httpdto.PrimaryPrediction{
			Disease:         result.Primary.Disease,
			Confidence:      result.Primary.ConfidenceFormatted,
			ConfidenceScore: result.Primary.Confidence,
			Treatment:       result.Primary.Treatment,
		},
		Top3Predictions:   result.Top3,
		PredictionSummary: result.Summary,
		Timestamp:         time.Now().Format(time.RFC3339),
		DebugInfo: httpdto.DebugInfo{
			ModelLoaded:     status.ModelLoaded,
			ClassNamesCount: status.ClassNamesCount,
			ImageSize:       result.ImageShape,
		},
	})
}

// ModelStatus reports whether the classifier loaded and what it knows.
func (h *InferenceHandler) ModelStatus(c *gin.Context) {
	status := h.service.Status()
	c.JSON(http.StatusOK, httpdto.ModelStatusResponse{
		Success: true,
		ModelStatus: httpdto.ModelStatusDTO{
			ModelLoaded:               status.ModelLoaded,
			ModelPath:                 status.ModelPath,
			ClassNames:                status.ClassNames,
			ClassNamesCount:           status.ClassNamesCount,
			TreatmentSuggestionsCount: status.TreatmentSuggestionsCount,
		},
		AvailableDiseases: status.ClassNames,
		ImgSize:           []int{services.ImgSize, services.ImgSize},
	})
}

func writePredictError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mango_errors.ErrTooLarge):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Image size must be less than 5MB"))
	case errors.Is(err, mango_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Only JPEG and PNG images are allowed"))
	case errors.Is(err, mango_errors.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid image file"))
	case errors.Is(err, mango_errors.ErrModelUnavailable):
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("ML model not loaded properly"))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(fmt.Sprintf("Prediction failed: %s", err)))
	}
}
