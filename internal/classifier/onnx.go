package classifier

import (
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXConfig describes how to load the exported model.
type ONNXConfig struct {
	ModelPath      string
	OrtLibraryPath string // optional override for the onnxruntime shared library
	InputName      string
	OutputName     string
	InputHeight    int
	InputWidth     int
	NumClasses     int
}

// ONNXModel runs the exported EfficientNet graph through onnxruntime. The
// session performs no internal mutation between runs, so concurrent Predict
// calls need no coordination.
type ONNXModel struct {
	session    *ort.DynamicAdvancedSession
	inputShape ort.Shape
	numClasses int
}

// LoadONNX initializes the onnxruntime environment (once per process) and
// opens a session for the model at cfg.ModelPath.
func LoadONNX(cfg ONNXConfig) (*ONNXModel, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file not found: %w", err)
	}

	if cfg.OrtLibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.OrtLibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize onnxruntime: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open model session: %w", err)
	}

	return &ONNXModel{
		session:    session,
		inputShape: ort.NewShape(1, int64(cfg.InputHeight), int64(cfg.InputWidth), 3),
		numClasses: cfg.NumClasses,
	}, nil
}

func (m *ONNXModel) Predict(input []float32) ([]float32, error) {
	inputTensor, err := ort.NewTensor(m.inputShape, input)
	if err != nil {
		return nil, fmt.Errorf("failed to build input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(m.numClasses)))
	if err != nil {
		return nil, fmt.Errorf("failed to build output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	if err := m.session.Run([]ort.Value{inputTensor}, []ort.Value{outputTensor}); err != nil {
		return nil, fmt.Errorf("model run failed: %w", err)
	}

	probs := make([]float32, m.numClasses)
	copy(probs, outputTensor.GetData())
	return probs, nil
}

// Close releases the session.
func (m *ONNXModel) Close() error {
	return m.session.Destroy()
}
