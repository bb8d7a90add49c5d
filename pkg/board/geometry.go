// Package board lays out and paints a 19×19 Go board (goban).
//
// All pixel positions derive from one Geometry value. A grid line i starts at
//
//	Pos(i) = Padding + i*SquareSize + i*LineThickness
//
// and every band, star point and label anchor is expressed in terms of it.
package board

import (
	"image"
	"image/color"
	"math"

	"github.com/xob0t/GoBan/pkg/errors"
)

// Board colors.
var (
	Background = color.RGBA{220, 179, 92, 255}
	Ink        = color.RGBA{0, 0, 0, 255}
)

// Geometry holds the board constants. The zero value is not usable; start
// from DefaultGeometry.
type Geometry struct {
	BoardLines    int // grid lines per axis
	ImageSize     int // canvas width and height in pixels
	Padding       int // image edge to first line
	SquareSize    int // gap between adjacent lines, excluding thickness
	LineThickness int

	StarRadius int
	StarLines  []int // line indices whose crossings are star points

	TopMargin  int // y of the top label row
	LeftMargin int // x of the left label column

	// Half of these is subtracted from the label anchors. They differ from
	// each other and from LabelSize; the offsets are kept as observed.
	TopAnchorFontSize  int
	LeftAnchorFontSize int
	LabelSize          float64 // label draw scale in points at 72 DPI
}

// DefaultGeometry is the 695×695 board.
//
// Note that 2*Padding + 18*SquareSize + 19*LineThickness is 710, not 695:
// the grid ends at x=680 and the right/bottom margin is narrower than the
// left/top one.
var DefaultGeometry = Geometry{
	BoardLines:    19,
	ImageSize:     695,
	Padding:       30,
	SquareSize:    34,
	LineThickness: 2,

	StarRadius: 4,
	StarLines:  []int{3, 9, 15},

	TopMargin:  7,
	LeftMargin: 11,

	TopAnchorFontSize:  10,
	LeftAnchorFontSize: 18,
	LabelSize:          18,
}

// Validate checks that the grid, star points and labels fit the canvas.
func (g Geometry) Validate() error {
	switch {
	case g.BoardLines < 1 || g.BoardLines > 26:
		return errors.New(errors.ErrCodeInvalidGeometry, "board lines %d outside 1..26", g.BoardLines)
	case g.ImageSize <= 0:
		return errors.New(errors.ErrCodeInvalidGeometry, "image size %d must be positive", g.ImageSize)
	case g.Padding < 0 || g.SquareSize < 0:
		return errors.New(errors.ErrCodeInvalidGeometry, "padding and square size must not be negative")
	case g.LineThickness <= 0:
		return errors.New(errors.ErrCodeInvalidGeometry, "line thickness %d must be positive", g.LineThickness)
	case g.StarRadius < 0:
		return errors.New(errors.ErrCodeInvalidGeometry, "star radius %d must not be negative", g.StarRadius)
	}
	if end := g.Extent(); end > g.ImageSize {
		return errors.New(errors.ErrCodeInvalidGeometry, "grid ends at %d, beyond canvas size %d", end, g.ImageSize)
	}
	for _, l := range g.StarLines {
		if l < 0 || l >= g.BoardLines {
			return errors.New(errors.ErrCodeInvalidGeometry, "star line %d outside 0..%d", l, g.BoardLines-1)
		}
	}
	return nil
}

// Pos returns the first pixel of grid line i along either axis.
func (g Geometry) Pos(i int) int {
	return g.Padding + i*g.SquareSize + i*g.LineThickness
}

// Extent returns the exclusive end of the grid, including the last line's
// thickness.
func (g Geometry) Extent() int {
	return g.Padding + (g.BoardLines-1)*g.SquareSize + g.BoardLines*g.LineThickness
}

// VerticalBand is the rectangle painted for vertical line i.
func (g Geometry) VerticalBand(i int) image.Rectangle {
	p := g.Pos(i)
	return image.Rect(p, g.Padding, p+g.LineThickness, g.Extent())
}

// HorizontalBand is the rectangle painted for horizontal line i.
func (g Geometry) HorizontalBand(i int) image.Rectangle {
	p := g.Pos(i)
	return image.Rect(g.Padding, p, g.Extent(), p+g.LineThickness)
}

// StarCenter returns the disk center for the star point at lines (i, j).
func (g Geometry) StarCenter(i, j int) image.Point {
	return image.Pt(g.starOffset(i), g.starOffset(j))
}

func (g Geometry) starOffset(i int) int {
	half := math.Round((float64(i) + 0.5) * float64(g.LineThickness))
	return g.Padding + i*g.SquareSize + int(half)
}

// StarPoints returns every star point center, column by column.
func (g Geometry) StarPoints() []image.Point {
	pts := make([]image.Point, 0, len(g.StarLines)*len(g.StarLines))
	for _, i := range g.StarLines {
		for _, j := range g.StarLines {
			pts = append(pts, g.StarCenter(i, j))
		}
	}
	return pts
}

// Letters returns one label per line: consecutive letters from "A".
// "I" is not skipped.
func (g Geometry) Letters() []string {
	out := make([]string, g.BoardLines)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

// TopLabelAnchor is the top-left corner of the label above line i.
func (g Geometry) TopLabelAnchor(i int) image.Point {
	return image.Pt(g.labelOffset(i, g.TopAnchorFontSize), g.TopMargin)
}

// LeftLabelAnchor is the top-left corner of the label left of line i.
func (g Geometry) LeftLabelAnchor(i int) image.Point {
	return image.Pt(g.LeftMargin, g.labelOffset(i, g.LeftAnchorFontSize))
}

func (g Geometry) labelOffset(i, fontSize int) int {
	return g.Padding + i*g.SquareSize + (i+1)*g.LineThickness - fontSize/2
}
