package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"HandsFree/internal/service/gesture"
)

const (
	// Сторона квадратного входа модели hand landmark.
	modelInputSize = 224

	landmarksLayer = "Identity"
	presenceLayer  = "Identity_1"
)

// Detector ищет одну руку в кадре через ONNX-модель hand landmark (gocv DNN).
type Detector struct {
	net           gocv.Net
	minConfidence float64
}

func NewDetector(modelPath string, minConfidence float64) (*Detector, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("vision: failed to load landmark model %q", modelPath)
	}
	return &Detector{net: net, minConfidence: minConfidence}, nil
}

// Detect возвращает найденные руки; пустой срез, если уверенность ниже порога.
func (d *Detector) Detect(f *Frame) ([]gesture.Landmarks, error) {
	if f == nil || f.RGB.Empty() {
		return nil, errors.New("vision: empty frame")
	}
	blob := gocv.BlobFromImage(f.RGB, 1.0/255.0, image.Pt(modelInputSize, modelInputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	outs := d.net.ForwardLayers([]string{landmarksLayer, presenceLayer})
	defer func() {
		for i := range outs {
			_ = outs[i].Close()
		}
	}()
	if len(outs) != 2 {
		return nil, fmt.Errorf("vision: model returned %d outputs, want 2", len(outs))
	}

	if presence := float64(outs[1].GetFloatAt(0, 0)); presence < d.minConfidence {
		return nil, nil
	}

	raw, err := outs[0].DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("vision: landmark output: %w", err)
	}
	l, err := gesture.ParseFlat(raw, modelInputSize)
	if err != nil {
		return nil, err
	}
	return []gesture.Landmarks{l}, nil
}

func (d *Detector) Close() error { return d.net.Close() }
