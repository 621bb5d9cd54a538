package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
)

func newSearchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search books by title, author or year",
		Long: `Search shows the books whose title, author or year contains the query,
ignoring case. Without a query it shows every stored book.

Example:
  bookshelf search go
  bookshelf search 2017`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return o.withStore(func(s *shelf.Store) error {
				u, err := s.Search(query)
				if err != nil {
					return err
				}
				return o.renderUpdate(cmd.OutOrStdout(), u)
			})
		},
	}
}
