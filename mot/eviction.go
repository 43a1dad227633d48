package mot

// EvictionPolicy decides whether an unmatched track should be dropped from the cache
type EvictionPolicy interface {
	Expired(track *Track) bool
}

// NoEviction keeps every track forever: the cache only grows
type NoEviction struct{}

// Expired implements EvictionPolicy
func (NoEviction) Expired(*Track) bool {
	return false
}

// MaxMissesPolicy drops a track once it has not been matched in more than MaxMisses frames of its class.
// Frames which do not carry the class at all are not counted.
type MaxMissesPolicy struct {
	MaxMisses int
}

// Expired implements EvictionPolicy
func (policy MaxMissesPolicy) Expired(track *Track) bool {
	return track.GetNoMatchTimes() > policy.MaxMisses
}

// EvictionByMaxMisses returns NoEviction for non-positive maxMisses
func EvictionByMaxMisses(maxMisses int) EvictionPolicy {
	if maxMisses <= 0 {
		return NoEviction{}
	}
	return MaxMissesPolicy{MaxMisses: maxMisses}
}
