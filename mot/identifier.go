package mot

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TrackID is an opaque 128-bit track identifier. Only equality is meaningful
type TrackID [16]byte

// Bytes returns identifier as byte slice (copy)
func (id TrackID) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// IsZero reports whether identifier has never been assigned
func (id TrackID) IsZero() bool {
	return id == TrackID{}
}

func (id TrackID) String() string {
	return uuid.UUID(id).String()
}

// TokenGenerator produces identifiers for new tracks
type TokenGenerator interface {
	NewToken() (TrackID, error)
}

// UUIDGenerator generates random (version 4) UUIDs from crypto/rand.
// Collisions are not checked.
type UUIDGenerator struct{}

// NewToken returns fresh random identifier
func (UUIDGenerator) NewToken() (TrackID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return TrackID{}, errors.Wrap(err, "Can't generate track identifier")
	}
	return TrackID(u), nil
}
