package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func newEditCmd(o *options) *cobra.Command {
	var b types.Book

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a book",
		Long: `Edit changes the fields given as flags and keeps the others.

Example:
  bookshelf edit 0192f3c4-... --title "The Go Programming Language, 2nd ed."
  bookshelf edit 0192f3c4-... --complete=true`,
		Args: idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withStore(func(s *shelf.Store) error {
				current, err := s.Get(args[0])
				if err != nil {
					return err
				}

				flags := cmd.Flags()
				if flags.Changed("title") {
					current.Title = b.Title
				}
				if flags.Changed("author") {
					current.Author = b.Author
				}
				if flags.Changed("year") {
					current.Year = b.Year
				}
				if flags.Changed("complete") {
					current.IsComplete = b.IsComplete
				}

				u, err := s.Submit(&current)
				if err != nil {
					return err
				}
				return o.renderUpdate(cmd.OutOrStdout(), u)
			})
		},
	}

	cmd.Flags().StringVar(&b.Title, "title", "", "new title")
	cmd.Flags().StringVar(&b.Author, "author", "", "new author")
	cmd.Flags().IntVar(&b.Year, "year", 0, "new publication year")
	cmd.Flags().BoolVar(&b.IsComplete, "complete", false, "shelf: true for read, false for unread")

	return cmd
}
