package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
)

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Args:  idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withStore(func(s *shelf.Store) error {
				b, err := s.Get(args[0])
				if err != nil {
					return err
				}
				return o.renderBook(cmd.OutOrStdout(), b)
			})
		},
	}
}
