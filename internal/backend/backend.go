// Package backend opens the KVStore selected by a types.Config.
package backend

import (
	"fmt"

	"github.com/mesh-intelligence/bookshelf/internal/kv"
	"github.com/mesh-intelligence/bookshelf/internal/sqlite"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Open validates cfg and opens the matching store. The caller must Close it.
func Open(cfg types.Config) (types.KVStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendFile:
		s, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open file backend: %w", err)
		}
		return s, nil
	case types.BackendSQLite:
		s, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return s, nil
	case types.BackendMemory:
		return kv.NewMemory(), nil
	default:
		return nil, types.ErrBackendUnknown
	}
}
