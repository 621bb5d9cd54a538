package books

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// maxIDAttempts bounds how often Add asks the generator for an unused id.
const maxIDAttempts = 8

// Result is the outcome of a collection operation.
type Result struct {
	// Books is the new collection.
	Books types.Collection

	// IsComplete reports the shelf the operation touched, when it touched
	// exactly one. Nil means both shelves may have changed.
	IsComplete *bool
}

// Engine performs collection operations that need an id source.
// The remaining operations are package-level functions.
type Engine struct {
	ids IDGenerator
}

// New returns an Engine using ids for new books. A nil ids selects UUIDIDs.
func New(ids IDGenerator) *Engine {
	if ids == nil {
		ids = UUIDIDs{}
	}
	return &Engine{ids: ids}
}

// Add appends payload to c under a fresh id. The assigned id is also
// written back to payload. Any id already on payload is ignored.
func (e *Engine) Add(c types.Collection, payload *types.Book) (Result, error) {
	if c == nil {
		return Result{}, types.ErrMissingCollection
	}
	if payload == nil {
		return Result{}, types.ErrMissingPayload
	}

	id, err := e.uniqueID(c)
	if err != nil {
		return Result{}, err
	}
	payload.ID = id

	out := make(types.Collection, len(c), len(c)+1)
	copy(out, c)
	out = append(out, *payload)

	return Result{Books: out, IsComplete: boolPtr(payload.IsComplete)}, nil
}

func (e *Engine) uniqueID(c types.Collection) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := e.ids.NewID()
		if id != "" && c.IndexOf(id) < 0 {
			return id, nil
		}
	}
	return "", types.ErrDuplicateID
}

// EditByID replaces the book whose id matches payload.ID, keeping its
// position. An unknown id is ErrIDNotFound; nothing is inserted.
func EditByID(c types.Collection, payload *types.Book) (Result, error) {
	if c == nil {
		return Result{}, types.ErrMissingCollection
	}
	if payload == nil {
		return Result{}, types.ErrMissingPayload
	}
	if payload.ID == "" {
		return Result{}, types.ErrMissingID
	}

	i := c.IndexOf(payload.ID)
	if i < 0 {
		return Result{}, fmt.Errorf("edit %s: %w", payload.ID, types.ErrIDNotFound)
	}

	out := c.Clone()
	out[i] = *payload
	return Result{Books: out}, nil
}

// DeleteByID removes the book with the given id and reports the shelf it
// was on. An empty collection is present, so deleting from it is
// ErrIDNotFound rather than ErrMissingCollection.
func DeleteByID(c types.Collection, id string) (Result, error) {
	i, err := locate(c, id)
	if err != nil {
		return Result{}, fmt.Errorf("delete %s: %w", id, err)
	}

	out := make(types.Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	out = append(out, c[i+1:]...)

	return Result{Books: out, IsComplete: boolPtr(c[i].IsComplete)}, nil
}

// ToggleComplete moves the book with the given id to the other shelf.
// Both shelves change, so Result.IsComplete is nil as for EditByID.
func ToggleComplete(c types.Collection, id string) (Result, error) {
	i, err := locate(c, id)
	if err != nil {
		return Result{}, fmt.Errorf("toggle %s: %w", id, err)
	}

	moved := c[i]
	moved.IsComplete = !moved.IsComplete

	return EditByID(c, &moved)
}

// Find returns the book with the given id, e.g. to pre-fill an edit form.
func Find(c types.Collection, id string) (types.Book, error) {
	i, err := locate(c, id)
	if err != nil {
		return types.Book{}, err
	}
	return c[i], nil
}

// FilterByText returns the books whose title, author or decimal year
// contains query, ignoring case. The result is a projection and is never
// nil; an empty query matches every book. Callers that want "empty query
// shows the stored list" reload from storage instead.
func FilterByText(c types.Collection, query string) types.Collection {
	fold := cases.Fold()
	q := fold.String(query)

	out := make(types.Collection, 0, len(c))
	for _, b := range c {
		if strings.Contains(fold.String(b.Title), q) ||
			strings.Contains(fold.String(b.Author), q) ||
			strings.Contains(strconv.Itoa(b.Year), q) {
			out = append(out, b)
		}
	}
	return out
}

// locate validates c and id and returns the index of id in c.
func locate(c types.Collection, id string) (int, error) {
	if c == nil {
		return -1, types.ErrMissingCollection
	}
	if id == "" {
		return -1, types.ErrMissingID
	}
	i := c.IndexOf(id)
	if i < 0 {
		return -1, types.ErrIDNotFound
	}
	return i, nil
}

func boolPtr(v bool) *bool { return &v }
