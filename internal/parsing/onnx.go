package parsing

import (
	"errors"
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/dudu/facescore/internal/inference"
)

// ErrModelNotFound is returned when the model file does not exist.
var ErrModelNotFound = errors.New("face parsing model not found")

// CheckModel returns ErrModelNotFound if modelPath does not exist.
func CheckModel(modelPath string) error {
	if _, err := os.Stat(modelPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
	}
	return nil
}

// ONNXSegmenter runs a BiSeNet style face parsing model with ONNX Runtime.
type ONNXSegmenter struct {
	session *inference.Session
}

// NewONNXSegmenter loads a face parsing model. The runtime must already be
// initialized with inference.Initialize.
func NewONNXSegmenter(modelPath, inputName, outputName string, threads int) (*ONNXSegmenter, error) {
	if err := CheckModel(modelPath); err != nil {
		return nil, err
	}

	if inputName == "" {
		inputName = "input"
	}
	if outputName == "" {
		outputName = "output"
	}

	session, err := inference.NewSession(modelPath, []string{inputName}, []string{outputName}, threads)
	if err != nil {
		return nil, fmt.Errorf("failed to create face parser session: %w", err)
	}

	return &ONNXSegmenter{session: session}, nil
}

// Segment implements Segmenter.
func (s *ONNXSegmenter) Segment(input []float32, size int) (Tensor, error) {
	inputTensor, err := inference.CreateTensor([]int64{1, 3, int64(size), int64(size)}, input)
	if err != nil {
		return Tensor{}, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputs, err := s.session.RunDynamic([]ort.Value{inputTensor})
	if err != nil {
		return Tensor{}, fmt.Errorf("face parsing inference failed: %w", err)
	}
	defer inference.DestroyAll(outputs)

	if len(outputs) == 0 || outputs[0] == nil {
		return Tensor{}, fmt.Errorf("face parsing model returned no output")
	}

	return toTensor(outputs[0])
}

// toTensor copies a runtime value into a detached Tensor.
func toTensor(v ort.Value) (Tensor, error) {
	shape := []int64(v.GetShape())

	switch t := v.(type) {
	case *ort.Tensor[float32]:
		return Tensor{Shape: shape, Type: Float32, Float32s: append([]float32(nil), t.GetData()...)}, nil
	case *ort.Tensor[int32]:
		return Tensor{Shape: shape, Type: Int32, Int32s: append([]int32(nil), t.GetData()...)}, nil
	case *ort.Tensor[int64]:
		return Tensor{Shape: shape, Type: Int64, Int64s: append([]int64(nil), t.GetData()...)}, nil
	default:
		return Tensor{}, fmt.Errorf("unsupported output value %T with shape %v", v, shape)
	}
}

// Close implements Segmenter.
func (s *ONNXSegmenter) Close() error {
	return s.session.Destroy()
}
