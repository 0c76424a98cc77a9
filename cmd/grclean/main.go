// Command grclean merges parallel edges of a DIMACS .gr graph and writes a
// symmetric copy next to it.
//
//	grclean clean roads.gr      # writes roads.clean.gr
//	grclean check roads.clean.gr
package main

import (
	"os"

	"github.com/katalvlaran/grclean/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
