// Package storage persists the whole book collection as one JSON array
// under a fixed key of a types.KVStore.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// BooksKey is the key the collection is stored under.
const BooksKey = "books"

// Adapter loads and saves the collection through a KVStore.
type Adapter struct {
	kv types.KVStore
}

// New returns an Adapter writing through kv.
func New(kv types.KVStore) *Adapter {
	return &Adapter{kv: kv}
}

// Load reads and decodes the stored collection.
// Returns ErrStorageNotFound when nothing has been saved yet and
// ErrCorruptData when the stored value is not a JSON array of books.
// A successful Load never returns a nil Collection.
func (a *Adapter) Load() (types.Collection, error) {
	data, err := a.kv.Get(BooksKey)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}

	var c types.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("load books: %w: %v", types.ErrCorruptData, err)
	}
	// "null" decodes without error but is not a collection.
	if c == nil {
		return nil, fmt.Errorf("load books: %w: null value", types.ErrCorruptData)
	}
	return c, nil
}

// LoadOrEmpty is Load with ErrStorageNotFound mapped to an empty collection.
func (a *Adapter) LoadOrEmpty() (types.Collection, error) {
	c, err := a.Load()
	if errors.Is(err, types.ErrStorageNotFound) {
		return types.Collection{}, nil
	}
	return c, err
}

// Save serializes c and overwrites the stored value. A nil collection is
// stored as an empty array.
func (a *Adapter) Save(c types.Collection) error {
	if c == nil {
		c = types.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}
	if err := a.kv.Set(BooksKey, data); err != nil {
		return fmt.Errorf("save books: %w", err)
	}
	return nil
}
