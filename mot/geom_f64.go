package mot

import (
	"image"

	"github.com/pkg/errors"
)

// BoxSize is the number of coordinates describing a single bounding box on the wire.
const BoxSize = 4

// BoundingBox is an axis-aligned box in pixel coordinates (x1, y1) - (x2, y2).
// Both corners are inclusive, so a box with x1 == x2 is one pixel wide.
type BoundingBox struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

func NewBoundingBox(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}

// NewBoundingBoxFrom converts image.Rectangle (exclusive Max) to inclusive box
func NewBoundingBoxFrom(rect image.Rectangle) BoundingBox {
	return BoundingBox{
		X1: float64(rect.Min.X),
		Y1: float64(rect.Min.Y),
		X2: float64(rect.Max.X - 1),
		Y2: float64(rect.Max.Y - 1),
	}
}

// Width returns inclusive width. Not clamped: degenerate boxes give non-positive values
func (box BoundingBox) Width() float64 {
	return box.X2 - box.X1 + 1
}

// Height returns inclusive height. Not clamped
func (box BoundingBox) Height() float64 {
	return box.Y2 - box.Y1 + 1
}

// Area returns inclusive area. Not clamped
func (box BoundingBox) Area() float64 {
	return box.Width() * box.Height()
}

// Center returns box's center
func (box BoundingBox) Center() (float64, float64) {
	return (box.X1 + box.X2) / 2.0, (box.Y1 + box.Y2) / 2.0
}

// Flat returns box as [x1, y1, x2, y2]
func (box BoundingBox) Flat() []float64 {
	return []float64{box.X1, box.Y1, box.X2, box.Y2}
}

// BoxesFromFlat splits flat xyxy coordinates into boxes.
// Length must be a multiple of BoxSize, otherwise ErrMalformedInput is returned.
func BoxesFromFlat(coords []float64) ([]BoundingBox, error) {
	if len(coords)%BoxSize != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "%d coordinates is not a multiple of %d", len(coords), BoxSize)
	}
	boxes := make([]BoundingBox, len(coords)/BoxSize)
	for i := range boxes {
		offset := i * BoxSize
		boxes[i] = NewBoundingBox(coords[offset], coords[offset+1], coords[offset+2], coords[offset+3])
	}
	return boxes, nil
}

// FlattenBoxes is the inverse of BoxesFromFlat
func FlattenBoxes(boxes []BoundingBox) []float64 {
	coords := make([]float64, 0, len(boxes)*BoxSize)
	for _, box := range boxes {
		coords = append(coords, box.X1, box.Y1, box.X2, box.Y2)
	}
	return coords
}
