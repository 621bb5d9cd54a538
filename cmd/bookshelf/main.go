// Command bookshelf tracks books on an unread and a read shelf.
package main

import (
	"os"

	"github.com/mesh-intelligence/bookshelf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
