// goban-bare — grid-only Go board image renderer.
//
// Usage:
//
//	goban-bare
//
// Writes output.png to the working directory with only the background and
// the 19x19 grid. No font is needed. Arguments are ignored.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xob0t/GoBan/internal/cli"
	"github.com/xob0t/GoBan/pkg/board"
)

func main() {
	if err := cli.Execute(context.Background(), os.Stderr, board.Bare, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
