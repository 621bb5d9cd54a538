package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func newAddCmd(o *options) *cobra.Command {
	var b types.Book

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Add puts a new book on the unread shelf, or on the read shelf with
--complete. The book gets a fresh id.

Example:
  bookshelf add --title "The Go Programming Language" --author Donovan --year 2015
  bookshelf add --title "Concurrency in Go" --author Cox-Buday --year 2017 --complete`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withStore(func(s *shelf.Store) error {
				u, err := s.Submit(&b)
				if err != nil {
					return err
				}
				return o.renderUpdate(cmd.OutOrStdout(), u)
			})
		},
	}

	cmd.Flags().StringVar(&b.Title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&b.Author, "author", "", "book author (required)")
	cmd.Flags().IntVar(&b.Year, "year", 0, "publication year")
	cmd.Flags().BoolVar(&b.IsComplete, "complete", false, "put the book on the read shelf")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
