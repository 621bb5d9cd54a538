package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
)

// Values accepted by list --shelf.
const (
	shelfAll    = "all"
	shelfUnread = "unread"
	shelfRead   = "read"
)

func newListCmd(o *options) *cobra.Command {
	var which string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shelves",
		Long: `List prints the unread and read shelves in the order books were added.

Example:
  bookshelf list
  bookshelf list --shelf read
  bookshelf list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, err := parseShelf(which)
			if err != nil {
				return err
			}
			return o.withStore(func(s *shelf.Store) error {
				c := s.Books()
				return o.renderUpdate(cmd.OutOrStdout(), shelf.Update{
					Books:   c,
					View:    s.Shelves(),
					Refresh: refresh,
				})
			})
		},
	}

	cmd.Flags().StringVar(&which, "shelf", shelfAll, "shelf to list: all, unread or read")
	return cmd
}

func parseShelf(which string) (shelf.Refresh, error) {
	switch which {
	case shelfAll, "":
		return shelf.RefreshBoth, nil
	case shelfUnread:
		return shelf.RefreshUnread, nil
	case shelfRead:
		return shelf.RefreshRead, nil
	default:
		return shelf.RefreshBoth, usageError{fmt.Errorf("invalid shelf %q (want all, unread or read)", which)}
	}
}
