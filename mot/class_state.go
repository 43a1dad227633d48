package mot

import "github.com/pkg/errors"

// ClassTrackState holds cached tracks for one (device, class) pair.
// Order is positional only.
type ClassTrackState struct {
	tracks []*Track
}

func newClassTrackState() *ClassTrackState {
	return &ClassTrackState{
		tracks: make([]*Track, 0),
	}
}

// Len returns number of cached tracks
func (state *ClassTrackState) Len() int {
	return len(state.tracks)
}

// Tracks returns copy of cached tracks
func (state *ClassTrackState) Tracks() []TrackInfo {
	infos := make([]TrackInfo, len(state.tracks))
	for i, track := range state.tracks {
		infos[i] = track.info()
	}
	return infos
}

func (state *ClassTrackState) boxes() []BoundingBox {
	boxes := make([]BoundingBox, len(state.tracks))
	for i, track := range state.tracks {
		boxes[i] = track.box
	}
	return boxes
}

// classUpdate is the prepared outcome of matching a single class in a frame
type classUpdate struct {
	// Matched cached index -> detection box
	matched []matchedBox
	// Tracks for unmatched detections, in detection order
	appended []*Track
}

type matchedBox struct {
	cached int
	box    BoundingBox
}

// validate checks the state can be matched against. Any violation means the entry has to be reset
func (state *ClassTrackState) validate() error {
	seen := make(map[TrackID]struct{}, len(state.tracks))
	for i, track := range state.tracks {
		if track == nil {
			return errors.Wrapf(ErrInvariantViolation, "track at position %d is nil", i)
		}
		if track.id.IsZero() {
			return errors.Wrapf(ErrInvariantViolation, "track at position %d has no identifier", i)
		}
		if _, ok := seen[track.id]; ok {
			return errors.Wrapf(ErrInvariantViolation, "identifier %s is used twice", track.id)
		}
		seen[track.id] = struct{}{}
	}
	return nil
}

func (state *ClassTrackState) reset() {
	state.tracks = make([]*Track, 0)
}

// apply is the single place where cached tracks are mutated.
// Returns number of evicted tracks.
func (state *ClassTrackState) apply(update classUpdate, policy EvictionPolicy) int {
	matched := make([]bool, len(state.tracks))
	for _, m := range update.matched {
		state.tracks[m.cached].observe(m.box)
		matched[m.cached] = true
	}
	evicted := 0
	kept := state.tracks[:0]
	for i, track := range state.tracks {
		if !matched[i] {
			track.IncNoMatch()
			if policy.Expired(track) {
				evicted++
				continue
			}
		}
		kept = append(kept, track)
	}
	// Do not keep references to evicted tracks in the tail of backing array
	for i := len(kept); i < len(state.tracks); i++ {
		state.tracks[i] = nil
	}
	state.tracks = append(kept, update.appended...)
	return evicted
}
