package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/paths"
	"github.com/mesh-intelligence/bookshelf/internal/shelf"
)

func newInitCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize bookshelf configuration and storage",
		Long: `Init writes config.yaml to the configuration directory if it does not
exist yet, creates the data directory and stores an empty reading list
when nothing is stored. Running init again keeps existing books.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, o)
		},
	}
}

func runInit(cmd *cobra.Command, o *options) error {
	cfg, err := o.storeConfig()
	if err != nil {
		return err
	}

	// Only persist data_dir when the user chose one explicitly.
	wrote, err := writeConfigIfMissing(o.configDir, configFile{
		Backend:  cfg.Backend,
		DataDir:  o.dataDir,
		IDScheme: cfg.IDScheme,
	})
	if err != nil {
		return systemError{err}
	}

	var count int
	err = o.withStore(func(s *shelf.Store) error {
		c := s.Books()
		count = len(c)
		if count > 0 {
			return nil
		}
		return s.Persist()
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if wrote {
		fmt.Fprintf(out, "Wrote %s\n", paths.ConfigFile(o.configDir))
	}
	fmt.Fprintf(out, "Bookshelf initialized (%s backend, %s, %d book(s))\n", cfg.Backend, cfg.DataDir, count)
	return nil
}
