package books

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// IDGenerator produces identifiers for new books.
type IDGenerator interface {
	NewID() string
}

// TimestampIDs generates the decimal milliseconds since the Unix epoch.
// Two calls within the same millisecond return the same id; Engine.Add
// retries on collision.
type TimestampIDs struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewID returns the current time in milliseconds as a decimal string.
func (g TimestampIDs) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// UUIDIDs generates UUID v7 identifiers.
type UUIDIDs struct{}

// NewID returns a new UUID v7 string.
func (UUIDIDs) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// GeneratorFor returns the generator for an id scheme from types.Config.
// An empty scheme selects UUIDIDs.
func GeneratorFor(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", types.IDSchemeUUID:
		return UUIDIDs{}, nil
	case types.IDSchemeTimestamp:
		return TimestampIDs{}, nil
	default:
		return nil, types.ErrIDSchemeUnknown
	}
}
