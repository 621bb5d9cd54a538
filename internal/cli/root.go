// Package cli implements the bookshelf command-line interface. Each
// sub-command is one user interaction against a shelf.Store: it opens the
// store, performs the interaction, renders the shelves that changed and
// closes the store.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/bookshelf/internal/paths"
	"github.com/mesh-intelligence/bookshelf/pkg/bookshelf"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// options holds global flag values and per-invocation state shared by all
// sub-commands of one root command.
type options struct {
	configDir string
	dataDir   string
	backend   string
	jsonMode  bool
	verbose   bool

	v         *viper.Viper
	log       *zap.Logger
	ownLogger bool
}

// NewRootCmd creates the top-level "bookshelf" command with global flags
// and all sub-commands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Track the books you want to read and the ones you have read",
		Long:    "Bookshelf keeps a reading list on two shelves, unread and read,\nand persists it after every change.",
		Version: bookshelf.Version,
		// Do not print usage on errors returned by sub-commands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil && o.ownLogger {
				_ = o.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&o.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/bookshelf)")
	root.PersistentFlags().StringVar(&o.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/bookshelf)")
	root.PersistentFlags().StringVar(&o.backend, "backend", "", "storage backend: file, sqlite or memory (default: file)")
	root.PersistentFlags().BoolVar(&o.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(o))
	root.AddCommand(newAddCmd(o))
	root.AddCommand(newEditCmd(o))
	root.AddCommand(newDeleteCmd(o))
	root.AddCommand(newMoveCmd(o))
	root.AddCommand(newShowCmd(o))
	root.AddCommand(newListCmd(o))
	root.AddCommand(newSearchCmd(o))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup builds the logger and loads configuration before any sub-command.
func (o *options) setup(cmd *cobra.Command) error {
	if o.log == nil {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if o.verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		log, err := cfg.Build()
		if err != nil {
			return systemError{fmt.Errorf("initialize logger: %w", err)}
		}
		o.log = log
		o.ownLogger = true
	}

	// version needs no configuration.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ConfigDir(o.configDir)
	if err != nil {
		return systemError{fmt.Errorf("resolve config dir: %w", err)}
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return systemError{err}
	}
	if err := v.BindPFlag(cfgKeyBackend, cmd.Root().PersistentFlags().Lookup("backend")); err != nil {
		return systemError{fmt.Errorf("bind backend flag: %w", err)}
	}
	o.configDir = configDir
	o.v = v

	o.log.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("backend", v.GetString(cfgKeyBackend)),
		zap.String("id_scheme", v.GetString(cfgKeyIDScheme)))
	return nil
}

// usageError marks invalid flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// systemError marks failures of the environment (disk, database, config
// files) rather than of the user's input.
type systemError struct{ err error }

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

// userErrors are sentinels caused by the user's input.
var userErrors = []error{
	types.ErrMissingCollection,
	types.ErrMissingPayload,
	types.ErrMissingID,
	types.ErrIDNotFound,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
	types.ErrIDSchemeUnknown,
}

func isUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	var u usageError
	return errors.As(err, &u)
}

// exitCode maps an error returned by a command to a process exit code.
// Unclassified errors (cobra's own argument errors) count as user errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case isUserError(err):
		return exitUserError
	case errors.As(err, new(systemError)):
		return exitSysError
	default:
		return exitUserError
	}
}

// classify wraps err as a systemError unless the user caused it.
func classify(err error) error {
	if err == nil || isUserError(err) {
		return err
	}
	return systemError{err}
}

// idArg requires exactly one non-empty book id argument.
func idArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{fmt.Errorf("%s requires exactly one book id, got %d argument(s)", cmd.Name(), len(args))}
	}
	if args[0] == "" {
		return types.ErrMissingID
	}
	return nil
}
