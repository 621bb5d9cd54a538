package types

import "errors"

// Book is a single entry on the reading list. The JSON field names are the
// persisted format and must not change.
type Book struct {
	ID         string `json:"id"`         // Assigned on creation, immutable afterwards.
	Title      string `json:"title"`      // Free text; empty is accepted.
	Author     string `json:"author"`     // Free text; empty is accepted.
	Year       int    `json:"year"`       // Publication year.
	IsComplete bool   `json:"isComplete"` // True when the book is on the read shelf.
}

// Collection is an ordered list of books in insertion order.
// A nil Collection means "no collection"; an empty non-nil Collection is a
// valid, present list with no books in it.
type Collection []Book

// Clone returns a copy of c that shares no backing array with it.
// Cloning nil returns nil.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// IndexOf returns the position of the book with the given id, or -1.
func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the ids of all books in order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, b := range c {
		ids[i] = b.ID
	}
	return ids
}

// Collection engine errors.
var (
	ErrMissingCollection = errors.New("no book list found")
	ErrMissingPayload    = errors.New("no form data found")
	ErrMissingID         = errors.New("book id is empty")
	ErrIDNotFound        = errors.New("book id not found in book list")
	ErrDuplicateID       = errors.New("could not generate a unique book id")
)
