package parsing

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageNet channel statistics expected by the face parsing network.
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// imageToTensor resizes img to size x size and returns a normalized NCHW
// float tensor with RGB channel order.
func imageToTensor(img image.Image, size int) []float32 {
	resized := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)

	plane := size * size
	out := make([]float32, 3*plane)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := resized.PixOffset(x, y)
			base := y*size + x
			out[base] = normalize(resized.Pix[i], 0)
			out[plane+base] = normalize(resized.Pix[i+1], 1)
			out[2*plane+base] = normalize(resized.Pix[i+2], 2)
		}
	}

	return out
}

func normalize(v uint8, channel int) float32 {
	return (float32(v)/255 - channelMean[channel]) / channelStd[channel]
}
