package ui

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/dudu/facescore/internal/parsing"
	"github.com/dudu/facescore/internal/pipeline"
	"github.com/dudu/facescore/internal/proportions"
)

var (
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	landmarkColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	problemColor  = color.RGBA{R: 255, G: 64, B: 64, A: 255}
)

// regionColors assigns a color per parsing region.
var regionColors = map[parsing.Region]color.RGBA{
	parsing.Skin:      {R: 255, G: 204, B: 153, A: 255},
	parsing.LeftBrow:  {R: 153, G: 102, B: 51, A: 255},
	parsing.RightBrow: {R: 153, G: 102, B: 51, A: 255},
	parsing.LeftEye:   {R: 0, G: 153, B: 255, A: 255},
	parsing.RightEye:  {R: 0, G: 153, B: 255, A: 255},
	parsing.Nose:      {R: 255, G: 255, B: 0, A: 255},
	parsing.Mouth:     {R: 255, G: 0, B: 255, A: 255},
	parsing.UpperLip:  {R: 255, G: 51, B: 102, A: 255},
	parsing.LowerLip:  {R: 204, G: 0, B: 51, A: 255},
	parsing.Hair:      {R: 102, G: 51, B: 0, A: 255},
}

// DrawParsing draws the bounding box of every facial region found.
func DrawParsing(img *gocv.Mat, result *parsing.Result) {
	if !result.IsValid() {
		return
	}

	for _, b := range result.SortedRegions() {
		c, ok := regionColors[b.Region]
		if !ok {
			continue
		}
		gocv.Rectangle(img, b.Rect(), c, 1)
		gocv.PutText(img, b.Region.String(), image.Pt(b.MinX, b.MinY-3),
			gocv.FontHersheyPlain, 0.9, c, 1)
	}
}

// DrawLandmarks draws flat canonical landmarks as small dots.
func DrawLandmarks(img *gocv.Mat, flat []float64) {
	for i := 0; i+1 < len(flat); i += 2 {
		gocv.Circle(img, image.Pt(int(flat[i]), int(flat[i+1])), 2, landmarkColor, -1)
	}
}

// DrawFace draws the parsing boxes, landmarks and face shape of an analyzed face.
func DrawFace(img *gocv.Mat, face *pipeline.Face) {
	DrawParsing(img, face.Parsing)
	DrawLandmarks(img, face.Landmarks)

	if face.Proportions.IsValid() {
		text := fmt.Sprintf("%s  %s  conf %.2f", face.Proportions.Shape(), face.Proportions.Source, face.Proportions.Confidence)
		gocv.PutText(img, text, image.Pt(10, 20), gocv.FontHersheyPlain, 1.2, textColor, 1)
	}
}

// DrawComparison draws a candidate with its per-feature scores. Features
// listed as problems are highlighted.
func DrawComparison(img *gocv.Mat, c *pipeline.Comparison) {
	DrawFace(img, c.Face)

	problems := make(map[proportions.Feature]bool, len(c.Problems))
	for _, f := range c.Problems {
		problems[f] = true
	}

	y := 40
	gocv.PutText(img, fmt.Sprintf("overall %.3f  shape %.2f", c.Result.Overall, c.Result.ShapeMatch),
		image.Pt(10, y), gocv.FontHersheyPlain, 1.2, textColor, 1)

	for _, f := range proportions.Features {
		y += 18
		col := textColor
		if problems[f] {
			col = problemColor
		}
		gocv.PutText(img, fmt.Sprintf("%-8s %.3f", f, c.Result.Score(f)), image.Pt(10, y),
			gocv.FontHersheyPlain, 1.1, col, 1)
	}
}
