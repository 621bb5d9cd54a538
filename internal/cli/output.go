package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/bookshelf/internal/shelf"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Shelf headings.
const (
	headingUnread = "Unread"
	headingRead   = "Read"
)

// shelvesJSON is the --json rendering of an update.
type shelvesJSON struct {
	Refresh string            `json:"refresh,omitempty"`
	Unread  *types.Collection `json:"unread,omitempty"`
	Read    *types.Collection `json:"read,omitempty"`
}

// renderUpdate prints the shelves an update says to refresh.
func (o *options) renderUpdate(w io.Writer, u shelf.Update) error {
	showUnread := u.Refresh != shelf.RefreshRead
	showRead := u.Refresh != shelf.RefreshUnread

	if o.jsonMode {
		out := shelvesJSON{Refresh: u.Refresh.String()}
		if showUnread {
			out.Unread = &u.View.Unread
		}
		if showRead {
			out.Read = &u.View.Read
		}
		return writeJSON(w, out)
	}

	if showUnread {
		printShelf(w, headingUnread, u.View.Unread)
	}
	if showRead {
		if showUnread {
			fmt.Fprintln(w)
		}
		printShelf(w, headingRead, u.View.Read)
	}
	return nil
}

// renderBook prints a single book.
func (o *options) renderBook(w io.Writer, b types.Book) error {
	if o.jsonMode {
		return writeJSON(w, b)
	}
	status := "unread"
	if b.IsComplete {
		status = "read"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", b.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", b.Title)
	fmt.Fprintf(tw, "Author:\t%s\n", b.Author)
	fmt.Fprintf(tw, "Year:\t%d\n", b.Year)
	fmt.Fprintf(tw, "Shelf:\t%s\n", status)
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printShelf prints one shelf in a human-readable table format.
func printShelf(w io.Writer, heading string, c types.Collection) {
	fmt.Fprintf(w, "%s (%d)\n", heading, len(c))
	if len(c) == 0 {
		fmt.Fprintln(w, "  No books.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR")
	for _, b := range c {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			b.ID,
			truncate(b.Title, 40),
			truncate(b.Author, 24),
			strconv.Itoa(b.Year),
		)
	}
	tw.Flush()

	// Trim trailing whitespace left by tabwriter padding.
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
