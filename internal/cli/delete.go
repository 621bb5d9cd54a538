package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
)

func newDeleteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a book",
		Args:    idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withStore(func(s *shelf.Store) error {
				u, err := s.Delete(args[0])
				if err != nil {
					return err
				}
				return o.renderUpdate(cmd.OutOrStdout(), u)
			})
		},
	}
}
