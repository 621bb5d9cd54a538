package types

import "errors"

// Config holds backend selection and parameters for opening a KVStore.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	IDScheme string `json:"id_scheme" yaml:"id_scheme"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Supported id schemes. IDSchemeTimestamp reproduces millisecond-timestamp
// ids; IDSchemeUUID generates UUID v7 values.
const (
	IDSchemeUUID      = "uuid"
	IDSchemeTimestamp = "timestamp"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrIDSchemeUnknown = errors.New("unknown id scheme")
)

var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendMemory: true,
}

// Validate checks that the Config is well-formed. An empty IDScheme is
// allowed and means IDSchemeUUID.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	switch c.IDScheme {
	case "", IDSchemeUUID, IDSchemeTimestamp:
	default:
		return ErrIDSchemeUnknown
	}
	return nil
}
