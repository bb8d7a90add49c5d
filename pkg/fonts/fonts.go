// fonts.go - Font resource loading for board labels.
// Uses golang.org/x/image/font/opentype for TrueType parsing. There is no
// fallback font: a missing or broken file is reported to the caller.
package fonts

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/xob0t/GoBan/pkg/errors"
)

// DefaultPath is the font file the annotated board is labelled with,
// relative to the working directory.
const DefaultPath = "resources/dejavu-sans.book.ttf"

// FontManager holds one parsed font and hands out faces from it.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager reads and parses the font at path.
func NewFontManager(path string) (*FontManager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceMissing, err, "read font %s", path)
	}

	return ParseFont(data)
}

// ParseFont parses in-memory TrueType/OpenType bytes.
func ParseFont(data []byte) (*FontManager, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceInvalid, err, "parse font")
	}
	return &FontManager{parsed: parsed}, nil
}

// GetFace returns a font.Face at the specified size.
func (fm *FontManager) GetFace(size float64, dpi float64) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceInvalid, err, "create font face")
	}

	return face, nil
}
