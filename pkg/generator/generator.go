// Package generator turns a painted canvas into a PNG file.
//
// All output follows one pipeline: the caller paints an *image.RGBA first,
// then hands it here to be encoded and written.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// DefaultOutput is where the board image is written, relative to the
// working directory.
const DefaultOutput = "output.png"

// Generate encodes img as PNG and writes it to output.
func Generate(output string, img image.Image) error {
	return writePNG(output, img)
}

// GenerateToWriter encodes img as PNG into w.
// This is useful for in-memory generation.
func GenerateToWriter(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
