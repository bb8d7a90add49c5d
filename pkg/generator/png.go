// png.go — PNG file writer.
package generator

import (
	"image"
	"os"
	"path/filepath"

	"github.com/xob0t/GoBan/pkg/errors"
)

// writePNG encodes img to a temp file next to output and renames it into
// place, so output is either the complete image or untouched.
func writePNG(output string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(output), ".goban-*.png")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "create %s", output)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := GenerateToWriter(f, img); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", output)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "close %s", output)
	}
	// CreateTemp uses 0600.
	if err := os.Chmod(tmp, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "chmod %s", output)
	}
	if err := os.Rename(tmp, output); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "rename to %s", output)
	}
	return nil
}
