// Package shelf owns the current book collection for an application.
// A Store sequences every interaction as engine operation, write-through
// save, then view projection, so storage and memory never diverge between
// calls.
package shelf

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/internal/books"
	"github.com/mesh-intelligence/bookshelf/internal/storage"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Refresh tells the renderer which shelves changed.
type Refresh int

// Refresh values.
const (
	RefreshBoth Refresh = iota
	RefreshUnread
	RefreshRead
)

// String returns the shelf name used in logs and JSON output.
func (r Refresh) String() string {
	switch r {
	case RefreshUnread:
		return "unread"
	case RefreshRead:
		return "read"
	default:
		return "both"
	}
}

// Update is what a Store hands the renderer after an interaction.
type Update struct {
	Books   types.Collection // Collection the view was projected from.
	View    books.View
	Refresh Refresh
}

// Store holds the in-memory collection and writes every mutation through
// to its Adapter before the mutation becomes visible.
type Store struct {
	mu      sync.Mutex
	books   types.Collection
	adapter *storage.Adapter
	engine  *books.Engine
	log     *zap.Logger
}

// Open loads the stored collection (empty if nothing is stored) and
// returns a Store over it. Corrupt stored data is an error.
func Open(adapter *storage.Adapter, engine *books.Engine, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if engine == nil {
		engine = books.New(nil)
	}

	c, err := adapter.LoadOrEmpty()
	if err != nil {
		log.Error("loading books failed", zap.Error(err))
		return nil, fmt.Errorf("open shelf: %w", err)
	}
	log.Debug("books loaded", zap.Int("count", len(c)))

	return &Store{books: c, adapter: adapter, engine: engine, log: log}, nil
}

// Books returns a copy of the current collection.
func (s *Store) Books() types.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.books.Clone()
}

// Shelves projects the current collection into both views.
func (s *Store) Shelves() books.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return books.Shelves(s.books)
}

// Persist writes the current collection to storage unchanged.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.adapter.Save(s.books); err != nil {
		s.log.Error("saving books failed", zap.String("op", "persist"), zap.Error(err))
		return fmt.Errorf("persist books: %w", err)
	}
	return nil
}

// Get returns the book with id, e.g. to pre-fill an edit form.
func (s *Store) Get(id string) (types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := books.Find(s.books, id)
	if err != nil {
		s.log.Warn("book lookup failed", zap.String("id", id), zap.Error(err))
		return types.Book{}, fmt.Errorf("get %s: %w", id, err)
	}
	return b, nil
}

// Submit handles a form submission: a payload without an id is added,
// one with an id replaces the stored book with that id.
func (s *Store) Submit(payload *types.Book) (Update, error) {
	if payload != nil && payload.ID != "" {
		return s.apply("edit", payload.ID, func(c types.Collection) (books.Result, error) {
			return books.EditByID(c, payload)
		})
	}
	return s.apply("add", "", func(c types.Collection) (books.Result, error) {
		return s.engine.Add(c, payload)
	})
}

// Delete removes the book with id.
func (s *Store) Delete(id string) (Update, error) {
	return s.apply("delete", id, func(c types.Collection) (books.Result, error) {
		return books.DeleteByID(c, id)
	})
}

// Toggle moves the book with id to the other shelf.
func (s *Store) Toggle(id string) (Update, error) {
	return s.apply("toggle", id, func(c types.Collection) (books.Result, error) {
		return books.ToggleComplete(c, id)
	})
}

// Search filters the current collection by query without persisting the
// result. An empty query reloads the full collection from storage and
// makes it current.
func (s *Store) Search(query string) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query != "" {
		found := books.FilterByText(s.books, query)
		s.log.Debug("search", zap.String("query", query), zap.Int("matches", len(found)))
		return Update{Books: found, View: books.Shelves(found), Refresh: RefreshBoth}, nil
	}

	c, err := s.adapter.LoadOrEmpty()
	if err != nil {
		s.log.Warn("reloading books failed", zap.Error(err))
		return Update{}, fmt.Errorf("search: %w", err)
	}
	s.books = c
	s.log.Debug("books reloaded", zap.Int("count", len(c)))
	return Update{Books: c.Clone(), View: books.Shelves(c), Refresh: RefreshBoth}, nil
}

// apply runs op against the current collection, saves the result and only
// then makes it current. On any error the Store is unchanged.
func (s *Store) apply(name, id string, op func(types.Collection) (books.Result, error)) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := op(s.books)
	if err != nil {
		s.log.Warn("operation failed", zap.String("op", name), zap.String("id", id), zap.Error(err))
		return Update{}, fmt.Errorf("%s book: %w", name, err)
	}

	if err := s.adapter.Save(res.Books); err != nil {
		s.log.Error("saving books failed", zap.String("op", name), zap.String("id", id), zap.Error(err))
		return Update{}, fmt.Errorf("%s book: %w", name, err)
	}
	s.books = res.Books

	refresh := refreshFor(res.IsComplete)
	s.log.Debug("books updated",
		zap.String("op", name),
		zap.String("id", id),
		zap.Int("count", len(res.Books)),
		zap.Stringer("refresh", refresh))

	return Update{Books: res.Books.Clone(), View: books.Shelves(res.Books), Refresh: refresh}, nil
}

func refreshFor(isComplete *bool) Refresh {
	switch {
	case isComplete == nil:
		return RefreshBoth
	case *isComplete:
		return RefreshRead
	default:
		return RefreshUnread
	}
}
