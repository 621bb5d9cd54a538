package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/internal/backend"
	"github.com/mesh-intelligence/bookshelf/internal/books"
	"github.com/mesh-intelligence/bookshelf/internal/paths"
	"github.com/mesh-intelligence/bookshelf/internal/shelf"
	"github.com/mesh-intelligence/bookshelf/internal/storage"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// storeConfig assembles the backend configuration from flags and config.yaml.
func (o *options) storeConfig() (types.Config, error) {
	dataDir, err := paths.DataDir(o.dataDir, o.v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, systemError{fmt.Errorf("resolve data dir: %w", err)}
	}
	cfg := types.Config{
		Backend:  o.v.GetString(cfgKeyBackend),
		DataDir:  dataDir,
		IDScheme: o.v.GetString(cfgKeyIDScheme),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// withStore opens the configured store, runs fn and closes the store.
func (o *options) withStore(fn func(s *shelf.Store) error) error {
	cfg, err := o.storeConfig()
	if err != nil {
		return err
	}

	ids, err := books.GeneratorFor(cfg.IDScheme)
	if err != nil {
		return err
	}

	kv, err := backend.Open(cfg)
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			o.log.Warn("closing store failed", zap.Error(err))
		}
	}()

	s, err := shelf.Open(storage.New(kv), books.New(ids), o.log.With(zap.String("backend", cfg.Backend)))
	if err != nil {
		return classify(err)
	}
	return classify(fn(s))
}
