package mot

import (
	"sort"

	"github.com/arthurkushman/go-hungarian"
	"github.com/pkg/errors"
)

// Pair is an accepted association between cached track and detection (indices within class)
type Pair struct {
	Cached    int
	Detection int
}

// Matcher associates cached tracks with new detections.
// Candidates are given in generation order: detection-major, cached-minor.
// Implementations must never return a cached or detection index twice and must drop pairs unless score > 0 (NaN included).
type Matcher interface {
	Match(candidates []Candidate, numCached, numDetections int) []Pair
}

// MatchOrder is for order in which greedy matcher walks the candidates
type MatchOrder uint16

const (
	// OrderAscending walks lowest overlap first. This is the historical behaviour of the tracker plugin
	OrderAscending MatchOrder = iota
	// OrderDescending walks highest overlap first (best match wins)
	OrderDescending
)

const (
	MatcherGreedy           = "greedy"
	MatcherGreedyDescending = "greedy-descending"
	MatcherHungarian        = "hungarian"
)

// MatcherByName returns matcher for configuration value. Empty name gives default greedy matcher
func MatcherByName(name string) (Matcher, error) {
	switch name {
	case "", MatcherGreedy:
		return GreedyMatcher{Order: OrderAscending}, nil
	case MatcherGreedyDescending:
		return GreedyMatcher{Order: OrderDescending}, nil
	case MatcherHungarian:
		return HungarianMatcher{}, nil
	default:
		return nil, errors.Errorf("unknown matcher %q", name)
	}
}

// GreedyMatcher sorts candidates by score (stable) and accepts every pair whose both sides are still free
type GreedyMatcher struct {
	Order MatchOrder
}

// Match implements Matcher
func (matcher GreedyMatcher) Match(candidates []Candidate, numCached, numDetections int) []Pair {
	pairs := make([]Pair, 0)
	if numCached == 0 || numDetections == 0 {
		return pairs
	}
	cachedMatched := make([]bool, numCached)
	newMatched := make([]bool, numDetections)
	pq := newCandidateHeap(candidates, matcher.Order == OrderDescending)
	for pq.Len() > 0 {
		item := pq.Pop()
		if !(item.Score > 0) || cachedMatched[item.Cached] || newMatched[item.Detection] {
			continue
		}
		cachedMatched[item.Cached] = true
		newMatched[item.Detection] = true
		pairs = append(pairs, Pair{Cached: item.Cached, Detection: item.Detection})
	}
	return pairs
}

// HungarianMatcher uses the Hungarian algorithm (Kuhn-Munkres) for optimal assignment maximizing total IoU
type HungarianMatcher struct{}

// Match implements Matcher
func (HungarianMatcher) Match(candidates []Candidate, numCached, numDetections int) []Pair {
	pairs := make([]Pair, 0)
	if numCached == 0 || numDetections == 0 {
		return pairs
	}
	// Square matrix padded with zeros (dummy IoU values): rows = cached, columns = detections
	paddedSize := maxInt(numCached, numDetections)
	scores := make([][]float64, paddedSize)
	for i := range scores {
		scores[i] = make([]float64, paddedSize)
	}
	for _, candidate := range candidates {
		// Non-positive and NaN scores are never accepted, so they are as good as padding
		if candidate.Score > 0 {
			scores[candidate.Cached][candidate.Detection] = candidate.Score
		}
	}
	assignments := hungarian.SolveMax(scores)

	rows := make([]int, 0, len(assignments))
	for row := range assignments {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	newMatched := make([]bool, numDetections)
	for _, cachedIdx := range rows {
		if cachedIdx >= numCached {
			continue
		}
		// Inner map is expected to hold a single {detection: score} entry
		for detectionIdx := range assignments[cachedIdx] {
			if detectionIdx >= numDetections || newMatched[detectionIdx] {
				continue
			}
			if !(scores[cachedIdx][detectionIdx] > 0) {
				continue
			}
			newMatched[detectionIdx] = true
			pairs = append(pairs, Pair{Cached: cachedIdx, Detection: detectionIdx})
			break
		}
	}
	return pairs
}
