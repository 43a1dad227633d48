package mot

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Associator assigns stable identifiers to per-frame detections using the Registry.
// Frames of different devices may be processed concurrently.
type Associator struct {
	registry  *Registry
	matcher   Matcher
	generator TokenGenerator
	eviction  EvictionPolicy
	logger    *zap.Logger
}

// Option configures Associator
type Option func(*Associator)

// WithMatcher sets matching strategy. Default is ascending GreedyMatcher
func WithMatcher(matcher Matcher) Option {
	return func(associator *Associator) {
		associator.matcher = matcher
	}
}

// WithTokenGenerator sets identifier generator. Default is UUIDGenerator
func WithTokenGenerator(generator TokenGenerator) Option {
	return func(associator *Associator) {
		associator.generator = generator
	}
}

// WithEvictionPolicy sets eviction policy. Default is NoEviction
func WithEvictionPolicy(policy EvictionPolicy) Option {
	return func(associator *Associator) {
		associator.eviction = policy
	}
}

// WithLogger sets logger for state resets
func WithLogger(logger *zap.Logger) Option {
	return func(associator *Associator) {
		associator.logger = logger
	}
}

// NewAssociator creates associator on top of the registry
func NewAssociator(registry *Registry, options ...Option) *Associator {
	associator := &Associator{
		registry:  registry,
		matcher:   GreedyMatcher{Order: OrderAscending},
		generator: UUIDGenerator{},
		eviction:  NoEviction{},
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(associator)
	}
	return associator
}

// Registry returns underlying registry
func (associator *Associator) Registry() *Registry {
	return associator.registry
}

// Associate matches frame's detections against cached tracks of the device.
// Malformed frames and identifier generation failures leave cached tracks untouched.
func (associator *Associator) Associate(frame Frame) (Result, error) {
	boxes, err := frame.boxes()
	if err != nil {
		return Result{}, err
	}

	device := associator.registry.Device(frame.DeviceID)
	device.mu.Lock()
	defer device.mu.Unlock()

	result := Result{
		IDs: make(map[string][]TrackID, len(boxes)),
	}
	classNames := frame.classNames()

	// Corrupted entries are reset before anything is matched against them
	for _, className := range classNames {
		state := device.class(className)
		if state == nil {
			continue
		}
		if err := state.validate(); err != nil {
			associator.logger.Warn("resetting class track state",
				zap.String("device_id", frame.DeviceID),
				zap.String("class", className),
				zap.Error(err),
			)
			state.reset()
			result.Stats.Resets++
		}
	}

	// Prepare every class first so a failure cannot leave the device half-updated
	updates := make([]classUpdate, len(classNames))
	for i, className := range classNames {
		update, ids, err := associator.prepare(device.class(className), boxes[className])
		if err != nil {
			return Result{}, errors.Wrapf(err, "Can't associate class %q of device %q", className, frame.DeviceID)
		}
		updates[i] = update
		result.IDs[className] = ids
		result.Stats.Matched += len(update.matched)
		result.Stats.Created += len(update.appended)
	}

	for i, className := range classNames {
		state := device.classOrCreate(className)
		result.Stats.Evicted += state.apply(updates[i], associator.eviction)
	}
	return result, nil
}

// prepare matches detections against state (nil means no cached tracks yet) without mutating it
func (associator *Associator) prepare(state *ClassTrackState, detections []BoundingBox) (classUpdate, []TrackID, error) {
	var cached []BoundingBox
	var cachedTracks []*Track
	if state != nil {
		cached = state.boxes()
		cachedTracks = state.tracks
	}

	candidates := make([]Candidate, 0, len(cached)*len(detections))
	for newIdx := range detections {
		for oldIdx := range cached {
			candidates = append(candidates, Candidate{
				Score:     IoU(cached[oldIdx], detections[newIdx]),
				Cached:    oldIdx,
				Detection: newIdx,
			})
		}
	}

	update := classUpdate{
		matched: make([]matchedBox, 0),
	}
	ids := make([]TrackID, len(detections))
	assigned := make([]bool, len(detections))
	reserved := make([]bool, len(cached))
	for _, pair := range associator.matcher.Match(candidates, len(cached), len(detections)) {
		// Prevent double update of tracks even if matcher misbehaves
		if pair.Cached < 0 || pair.Cached >= len(cached) || pair.Detection < 0 || pair.Detection >= len(detections) {
			continue
		}
		if reserved[pair.Cached] || assigned[pair.Detection] {
			continue
		}
		reserved[pair.Cached] = true
		update.matched = append(update.matched, matchedBox{cached: pair.Cached, box: detections[pair.Detection]})
		ids[pair.Detection] = cachedTracks[pair.Cached].id
		assigned[pair.Detection] = true
	}

	// Every unmatched detection starts a new track
	for newIdx := range detections {
		if assigned[newIdx] {
			continue
		}
		id, err := associator.generator.NewToken()
		if err != nil {
			return classUpdate{}, nil, err
		}
		ids[newIdx] = id
		update.appended = append(update.appended, NewTrack(id, detections[newIdx]))
	}
	return update, ids, nil
}
