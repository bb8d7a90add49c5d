// goban — Go board image renderer.
//
// Usage:
//
//	goban
//
// Writes output.png to the working directory: grid, star points and A..S
// coordinate labels. Run it from the repository root so the label font at
// resources/dejavu-sans.book.ttf is found. Arguments are ignored.
// See cmd/goban-bare for the grid-only board.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xob0t/GoBan/internal/cli"
	"github.com/xob0t/GoBan/pkg/board"
)

func main() {
	if err := cli.Execute(context.Background(), os.Stderr, board.Annotated, os.Args[1:]); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
