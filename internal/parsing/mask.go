package parsing

import (
	"image"
	"sort"
)

// Mask is a row-major grid of region labels.
type Mask struct {
	Width  int
	Height int
	Labels []Region
}

// NewMask returns a background-filled mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Labels: make([]Region, width*height),
	}
}

// At returns the label at (x, y).
func (m *Mask) At(x, y int) Region {
	return m.Labels[y*m.Width+x]
}

// Set assigns a label at (x, y).
func (m *Mask) Set(x, y int, r Region) {
	m.Labels[y*m.Width+x] = r
}

// Fill assigns a label to every pixel inside rect.
func (m *Mask) Fill(rect image.Rectangle, r Region) {
	rect = rect.Intersect(image.Rect(0, 0, m.Width, m.Height))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			m.Set(x, y, r)
		}
	}
}

// Resize maps the mask onto a new resolution by nearest-neighbour index
// sampling at pixel centres. Labels are never interpolated.
func (m *Mask) Resize(width, height int) *Mask {
	if width == m.Width && height == m.Height {
		out := NewMask(width, height)
		copy(out.Labels, m.Labels)
		return out
	}

	out := NewMask(width, height)

	xs := make([]int, width)
	for x := range xs {
		xs[x] = sampleIndex(x, m.Width, width)
	}

	for y := 0; y < height; y++ {
		row := sampleIndex(y, m.Height, height) * m.Width
		dst := out.Labels[y*width : (y+1)*width]
		for x, sx := range xs {
			dst[x] = m.Labels[row+sx]
		}
	}

	return out
}

// sampleIndex returns floor((dst + 0.5) * srcSize / dstSize) clamped to the source.
func sampleIndex(dst, srcSize, dstSize int) int {
	i := ((2*dst + 1) * srcSize) / (2 * dstSize)
	if i >= srcSize {
		return srcSize - 1
	}
	return i
}

// RegionBounds is the bounding box and pixel count of one region.
type RegionBounds struct {
	Region Region
	MinX   int
	MinY   int
	MaxX   int
	MaxY   int
	Pixels int
}

// Width returns the inclusive box width in pixels.
func (b RegionBounds) Width() int {
	if b.Pixels == 0 {
		return 0
	}
	return b.MaxX - b.MinX + 1
}

// Height returns the inclusive box height in pixels.
func (b RegionBounds) Height() int {
	if b.Pixels == 0 {
		return 0
	}
	return b.MaxY - b.MinY + 1
}

// CenterX returns the horizontal box center.
func (b RegionBounds) CenterX() float64 {
	return float64(b.MinX+b.MaxX) / 2
}

// Rect returns the bounds as an image rectangle.
func (b RegionBounds) Rect() image.Rectangle {
	return image.Rect(b.MinX, b.MinY, b.MaxX+1, b.MaxY+1)
}

// Union merges two bounds; empty bounds are ignored.
func (b RegionBounds) Union(o RegionBounds) RegionBounds {
	switch {
	case o.Pixels == 0:
		return b
	case b.Pixels == 0:
		return o
	}
	return RegionBounds{
		Region: b.Region,
		MinX:   min(b.MinX, o.MinX),
		MinY:   min(b.MinY, o.MinY),
		MaxX:   max(b.MaxX, o.MaxX),
		MaxY:   max(b.MaxY, o.MaxY),
		Pixels: b.Pixels + o.Pixels,
	}
}

// ComputeBounds collects pixel counts and min/max coordinates for every
// region in a single pass.
func ComputeBounds(m *Mask) map[Region]RegionBounds {
	var acc [NumRegions]RegionBounds

	for y := 0; y < m.Height; y++ {
		row := m.Labels[y*m.Width : (y+1)*m.Width]
		for x, r := range row {
			if int(r) >= NumRegions {
				continue
			}
			b := &acc[r]
			if b.Pixels == 0 {
				b.MinX, b.MaxX = x, x
				b.MinY, b.MaxY = y, y
			} else {
				if x < b.MinX {
					b.MinX = x
				}
				if x > b.MaxX {
					b.MaxX = x
				}
				if y > b.MaxY {
					b.MaxY = y
				}
			}
			b.Pixels++
		}
	}

	result := make(map[Region]RegionBounds)
	for i := range acc {
		if acc[i].Pixels > 0 {
			acc[i].Region = Region(i)
			result[Region(i)] = acc[i]
		}
	}

	return result
}

// sortedRegions returns the regions present in bounds, largest first.
func sortedRegions(bounds map[Region]RegionBounds) []RegionBounds {
	list := make([]RegionBounds, 0, len(bounds))
	for _, b := range bounds {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Pixels == list[j].Pixels {
			return list[i].Region < list[j].Region
		}
		return list[i].Pixels > list[j].Pixels
	})
	return list
}
