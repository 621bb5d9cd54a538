package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
)

func newMoveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "move <id>",
		Aliases: []string{"toggle"},
		Short:   "Move a book to the other shelf",
		Long:    "Move marks an unread book as read, or a read book as unread.",
		Args:    idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withStore(func(s *shelf.Store) error {
				u, err := s.Toggle(args[0])
				if err != nil {
					return err
				}
				return o.renderUpdate(cmd.OutOrStdout(), u)
			})
		},
	}
}
