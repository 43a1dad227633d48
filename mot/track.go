package mot

import (
	kalman_filter "github.com/LdDl/kalman-filter"
)

// Track is a persisted identity (identifier + last known box) for one object within a device/class pair.
type Track struct {
	id           TrackID
	box          BoundingBox
	hits         int
	noMatchTimes int
	// Motion estimate. Informational only, matching always uses box
	motion *kalman_filter.KalmanBBox
}

func newMotion(box BoundingBox) *kalman_filter.KalmanBBox {
	// Kalman filter props
	dt := 1.0
	uCx := 1.0
	uCy := 1.0
	uW := 0.0
	uH := 0.0
	stdDevA := 2.0
	stdDevMCx := 0.1
	stdDevMCy := 0.1
	stdDevMW := 0.1
	stdDevMH := 0.1
	cx, cy := box.Center()
	return kalman_filter.NewKalmanBBox(
		dt, uCx, uCy, uW, uH,
		stdDevA, stdDevMCx, stdDevMCy, stdDevMW, stdDevMH,
		kalman_filter.WithStateBBox(cx, cy, box.Width(), box.Height()),
	)
}

// NewTrack creates track for the given identifier and box
func NewTrack(id TrackID, box BoundingBox) *Track {
	return &Track{
		id:     id,
		box:    box,
		hits:   1,
		motion: newMotion(box),
	}
}

// GetID returns track's identifier
func (track *Track) GetID() TrackID {
	return track.id
}

// GetBBox returns last known bounding box
func (track *Track) GetBBox() BoundingBox {
	return track.box
}

// GetHits returns number of frames the track has been observed in
func (track *Track) GetHits() int {
	return track.hits
}

// GetNoMatchTimes returns number of consecutive frames (of its class) the track has not been matched in
func (track *Track) GetNoMatchTimes() int {
	return track.noMatchTimes
}

// IncNoMatch increases track's no match times
func (track *Track) IncNoMatch() {
	track.noMatchTimes++
}

// Velocity returns current velocity estimates (vx, vy, vw, vh) in pixels per frame
func (track *Track) Velocity() (float64, float64, float64, float64) {
	return track.motion.GetVelocity()
}

// observe replaces box with matched detection and steps motion estimate.
func (track *Track) observe(box BoundingBox) {
	track.box = box
	track.hits++
	track.noMatchTimes = 0

	track.motion.Predict()
	cx, cy := box.Center()
	err := track.motion.Update(cx, cy, box.Width(), box.Height())
	if err != nil {
		// Filter diverged (e.g. singular innovation), start over from the observed box
		track.motion = newMotion(box)
	}
}

// TrackInfo is read-only copy of a track
type TrackInfo struct {
	ID           TrackID
	BBox         BoundingBox
	Hits         int
	NoMatchTimes int
	Velocity     [4]float64
}

func (track *Track) info() TrackInfo {
	vx, vy, vw, vh := track.Velocity()
	return TrackInfo{
		ID:           track.id,
		BBox:         track.box,
		Hits:         track.hits,
		NoMatchTimes: track.noMatchTimes,
		Velocity:     [4]float64{vx, vy, vw, vh},
	}
}
