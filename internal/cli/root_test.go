package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/xob0t/GoBan/pkg/board"
	"github.com/xob0t/GoBan/pkg/errors"
	"github.com/xob0t/GoBan/pkg/fonts"
	"github.com/xob0t/GoBan/pkg/generator"
)

// inWorkdir switches to a fresh directory, optionally holding the label font.
func inWorkdir(t *testing.T, withFont bool) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
	if !withFont {
		return
	}
	path := filepath.Join(dir, fonts.DefaultPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
}

func readOutput(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(generator.DefaultOutput)
	if err != nil {
		t.Fatalf("read %s: %v", generator.DefaultOutput, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode %s: %v", generator.DefaultOutput, err)
	}
	if b := img.Bounds(); b.Dx() != 695 || b.Dy() != 695 {
		t.Errorf("output is %dx%d, want 695x695", b.Dx(), b.Dy())
	}
	return data
}

func TestExecuteBareWithoutFont(t *testing.T) {
	inWorkdir(t, false)

	var stderr bytes.Buffer
	if err := Execute(context.Background(), &stderr, board.Bare, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data := readOutput(t)
	img, _ := png.Decode(bytes.NewReader(data))
	g := board.DefaultGeometry
	c := g.StarCenter(3, 3)
	r, gr, b, _ := img.At(c.X+3, c.Y+2).RGBA()
	if uint8(r>>8) != 220 || uint8(gr>>8) != 179 || uint8(b>>8) != 92 {
		t.Error("bare board should have no star points")
	}
	if !bytes.Contains(stderr.Bytes(), []byte("Wrote output.png")) {
		t.Errorf("stderr = %q", stderr.String())
	}
	if bytes.Contains(stderr.Bytes(), []byte("drew grid")) {
		t.Error("pass logging is debug level and should not reach stderr")
	}
}

func TestExecuteAnnotated(t *testing.T) {
	inWorkdir(t, true)

	var stderr bytes.Buffer
	if err := Execute(context.Background(), &stderr, board.Annotated, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data := readOutput(t)
	img, _ := png.Decode(bytes.NewReader(data))
	c := board.DefaultGeometry.StarCenter(9, 9)
	r, g, b, _ := img.At(c.X+3, c.Y+2).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Error("annotated board should have a star point at tengen")
	}
}

func TestExecuteMissingFont(t *testing.T) {
	inWorkdir(t, false)

	var stderr bytes.Buffer
	err := Execute(context.Background(), &stderr, board.Annotated, nil)
	if !errors.Is(err, errors.ErrCodeResourceMissing) {
		t.Fatalf("Execute() error = %v, want RESOURCE_MISSING", err)
	}
	if _, statErr := os.Stat(generator.DefaultOutput); !os.IsNotExist(statErr) {
		t.Error("output.png should not exist after a failed run")
	}
}

func TestExecuteInvalidFont(t *testing.T) {
	inWorkdir(t, true)
	if err := os.WriteFile(fonts.DefaultPath, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), &bytes.Buffer{}, board.Annotated, nil)
	if !errors.Is(err, errors.ErrCodeResourceInvalid) {
		t.Fatalf("Execute() error = %v, want RESOURCE_INVALID", err)
	}
	if _, statErr := os.Stat(generator.DefaultOutput); !os.IsNotExist(statErr) {
		t.Error("output.png should not exist after a failed run")
	}
}

func TestExecuteUnwritableOutput(t *testing.T) {
	inWorkdir(t, false)
	// A directory in the way makes the final rename fail.
	if err := os.Mkdir(generator.DefaultOutput, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(generator.DefaultOutput, "keep"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), &bytes.Buffer{}, board.Bare, nil)
	if !errors.Is(err, errors.ErrCodeIOFailure) {
		t.Fatalf("Execute() error = %v, want IO_FAILURE", err)
	}
}

func TestExecuteIgnoresArguments(t *testing.T) {
	inWorkdir(t, true)

	if err := Execute(context.Background(), &bytes.Buffer{}, board.Annotated, nil); err != nil {
		t.Fatal(err)
	}
	plain := readOutput(t)

	tests := [][]string{
		{"-h"},
		{"--help"},
		{"help"},
		{"--bare=maybe"},
		{"--bare"},
		{"-v", "extra", "--size=9"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if err := os.Remove(generator.DefaultOutput); err != nil {
				t.Fatal(err)
			}
			var stderr bytes.Buffer
			if err := Execute(context.Background(), &stderr, board.Annotated, args); err != nil {
				t.Fatalf("Execute(%q) error = %v", args, err)
			}
			if !bytes.Equal(plain, readOutput(t)) {
				t.Errorf("Execute(%q) produced a different image", args)
			}
			if bytes.Contains(stderr.Bytes(), []byte("Usage:")) {
				t.Errorf("Execute(%q) printed usage", args)
			}
		})
	}
}

func TestExecuteIdempotent(t *testing.T) {
	inWorkdir(t, true)

	if err := Execute(context.Background(), &bytes.Buffer{}, board.Annotated, nil); err != nil {
		t.Fatal(err)
	}
	first := readOutput(t)
	if err := Execute(context.Background(), &bytes.Buffer{}, board.Annotated, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, readOutput(t)) {
		t.Error("two runs produced different PNG bytes")
	}
}
