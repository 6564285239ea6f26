package main

import (
	"fmt"
	"os"

	"github.com/tsawler/go-metal/checkpoints"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/dudu/facescore/internal/config"
	"github.com/dudu/facescore/internal/inference"
	"github.com/dudu/facescore/internal/parsing"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: modelcheck <model.onnx> [--metal]")
		fmt.Println("\nThis tool checks that a face parsing model loads in ONNX Runtime")
		fmt.Println("and that its output can be decoded into a label mask.")
		fmt.Println("With --metal it also tries a go-metal import of the graph.")
		os.Exit(1)
	}

	modelPath := os.Args[1]
	metal := len(os.Args) > 2 && os.Args[2] == "--metal"

	fmt.Printf("Checking face parsing model: %s\n", modelPath)

	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		fmt.Printf("Error: File not found: %s\n", modelPath)
		os.Exit(1)
	}

	conf, err := config.Load("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := checkRuntime(conf, modelPath); err != nil {
		fmt.Printf("\n❌ %v\n", err)
		os.Exit(1)
	}

	if metal {
		checkMetal(modelPath)
	}
}

func checkRuntime(conf config.Config, modelPath string) error {
	fmt.Printf("Initializing ONNX Runtime from %s...\n", conf.LibraryPath)
	if err := inference.Initialize(conf.LibraryPath); err != nil {
		return err
	}
	defer inference.Shutdown()

	fmt.Println("✓ ONNX Runtime initialized")

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return fmt.Errorf("failed to get model info: %w", err)
	}

	fmt.Printf("\nInputs (%d):\n", len(inputs))
	for _, info := range inputs {
		fmt.Printf("  %s: shape=%v, type=%v\n", info.Name, info.Dimensions, info.DataType)
	}

	fmt.Printf("\nOutputs (%d):\n", len(outputs))
	for _, info := range outputs {
		fmt.Printf("  %s: shape=%v, type=%v\n", info.Name, info.Dimensions, info.DataType)
	}

	if len(inputs) == 0 || len(outputs) == 0 {
		return fmt.Errorf("model has no inputs or outputs")
	}

	model, err := parsing.NewONNXSegmenter(modelPath, inputs[0].Name, outputs[0].Name, conf.Threads)
	if err != nil {
		return err
	}
	defer model.Close()

	size := conf.InputSize
	fmt.Printf("\nRunning a blank %dx%d input...\n", size, size)

	out, err := model.Segment(make([]float32, 3*size*size), size)
	if err != nil {
		return err
	}

	mask, layout, ok := parsing.DecodeMask(out)
	if !ok {
		return fmt.Errorf("output shape %v (%s) is not a recognized label layout", out.Shape, out.Type)
	}

	fmt.Printf("✓ Output %v decoded as %s, mask %dx%d\n", out.Shape, layout, mask.Width, mask.Height)
	fmt.Println("\n✅ SUCCESS! Model is usable as a face parser.")

	return nil
}

func checkMetal(modelPath string) {
	fmt.Println("\nAttempting to import with go-metal...")

	importer := checkpoints.NewONNXImporter()
	checkpoint, err := importer.ImportFromONNX(modelPath)
	if err != nil {
		fmt.Printf("  go-metal import failed: %v\n", err)
		fmt.Println("  The graph likely uses operations go-metal does not support.")
		return
	}

	fmt.Printf("  Layers: %d\n", len(checkpoint.ModelSpec.Layers))
	fmt.Printf("  Weights: %d tensors\n", len(checkpoint.Weights))
	for i, layer := range checkpoint.ModelSpec.Layers {
		fmt.Printf("  %d: %s (%s)\n", i+1, layer.Name, layer.Type)
	}
}
