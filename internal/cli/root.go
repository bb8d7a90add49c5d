package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xob0t/GoBan/pkg/board"
	"github.com/xob0t/GoBan/pkg/fonts"
	"github.com/xob0t/GoBan/pkg/generator"
)

// Execute renders the board with opts and logs to stderr. args are accepted
// and never read.
func Execute(ctx context.Context, stderr io.Writer, opts board.Options, args []string) error {
	// cobra falls back to os.Args on nil.
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(stderr, opts)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stderr io.Writer, opts board.Options) *cobra.Command {
	root := &cobra.Command{
		Use:                "goban",
		Short:              "Render a 19x19 Go board to output.png",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, charmlog.InfoLevel)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts)
		},
	}

	root.SetOut(stderr)
	root.SetErr(stderr)

	return root
}

// runRender paints the board and writes generator.DefaultOutput. The font is
// loaded before drawing, and nothing is written unless rendering succeeded.
func runRender(ctx context.Context, opts board.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	r, err := board.NewRenderer(opts,
		board.WithFontPath(fonts.DefaultPath),
		board.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	img := r.Render()
	if err := generator.Generate(generator.DefaultOutput, img); err != nil {
		return err
	}

	prog.done("Wrote " + generator.DefaultOutput)
	return nil
}
