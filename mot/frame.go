package mot

import (
	"sort"

	"github.com/pkg/errors"
)

// Frame is a decoded request: detections of one video frame grouped by class.
// Detections are flat xyxy coordinates as they come on the wire.
// Empty DeviceID is a valid key: absence of the device field is detected while decoding.
type Frame struct {
	DeviceID   string
	Detections map[string][]float64
}

// FrameFromBoxes builds frame from typed boxes
func FrameFromBoxes(deviceID string, boxes map[string][]BoundingBox) Frame {
	detections := make(map[string][]float64, len(boxes))
	for className, classBoxes := range boxes {
		detections[className] = FlattenBoxes(classBoxes)
	}
	return Frame{
		DeviceID:   deviceID,
		Detections: detections,
	}
}

// classNames returns class names in sorted order
func (frame Frame) classNames() []string {
	names := make([]string, 0, len(frame.Detections))
	for name := range frame.Detections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// boxes validates the whole frame and returns boxes per class
func (frame Frame) boxes() (map[string][]BoundingBox, error) {
	boxes := make(map[string][]BoundingBox, len(frame.Detections))
	for className, coords := range frame.Detections {
		classBoxes, err := BoxesFromFlat(coords)
		if err != nil {
			return nil, errors.Wrapf(err, "class %q", className)
		}
		boxes[className] = classBoxes
	}
	return boxes, nil
}

// Result holds identifiers per class, positionally aligned with frame's detections of the class
type Result struct {
	IDs   map[string][]TrackID
	Stats Stats
}

// Stats summarizes what a frame did to the registry
type Stats struct {
	Matched int
	Created int
	Evicted int
	Resets  int
}
