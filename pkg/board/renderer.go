// renderer.go - Painting engine for the board image.
// Passes run in a fixed order over one canvas: background -> grid ->
// star points -> top labels -> left labels. Later passes paint over earlier ones.
package board

import (
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xob0t/GoBan/pkg/fonts"
	"github.com/xob0t/GoBan/pkg/generator"
)

// Options selects the optional passes.
type Options struct {
	DrawStarPoints bool
	DrawLabels     bool
}

var (
	// Bare draws only the background and grid.
	Bare = Options{}
	// Annotated adds star points and coordinate labels.
	Annotated = Options{DrawStarPoints: true, DrawLabels: true}
)

// Renderer paints boards for one Geometry and Options pair.
type Renderer struct {
	geom     Geometry
	opts     Options
	fontPath string
	logger   *log.Logger

	face   font.Face
	ascent int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithGeometry replaces DefaultGeometry.
func WithGeometry(g Geometry) RendererOption {
	return func(r *Renderer) { r.geom = g }
}

// WithFontPath replaces fonts.DefaultPath.
func WithFontPath(path string) RendererOption {
	return func(r *Renderer) { r.fontPath = path }
}

// WithLogger sets the logger passes report to at debug level.
func WithLogger(l *log.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer validates the geometry and, when labels are enabled, loads the
// font up front so a bad font fails before anything is drawn.
func NewRenderer(opts Options, ro ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		geom:     DefaultGeometry,
		opts:     opts,
		fontPath: fonts.DefaultPath,
		logger:   log.New(io.Discard),
	}
	for _, o := range ro {
		o(r)
	}

	if err := r.geom.Validate(); err != nil {
		return nil, err
	}

	if opts.DrawLabels {
		fm, err := fonts.NewFontManager(r.fontPath)
		if err != nil {
			return nil, err
		}
		face, err := fm.GetFace(r.geom.LabelSize, 72)
		if err != nil {
			return nil, err
		}
		r.face = face
		r.ascent = face.Metrics().Ascent.Ceil()
		r.logger.Debug("loaded font", "path", r.fontPath, "size", r.geom.LabelSize)
	}

	return r, nil
}

// Close releases the label font face, if any.
func (r *Renderer) Close() error {
	if r.face == nil {
		return nil
	}
	return r.face.Close()
}

// Geometry returns the geometry the renderer paints with.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// Render paints a fresh canvas.
func (r *Renderer) Render() *image.RGBA {
	size := r.geom.ImageSize
	img := generator.NewSolidImage(size, size, Background)
	r.logger.Debug("filled background", "size", size)

	r.drawGrid(img)

	if r.opts.DrawStarPoints {
		r.drawStarPoints(img)
	}

	if r.opts.DrawLabels {
		letters := r.geom.Letters()
		for i, l := range letters {
			r.drawString(img, l, r.geom.TopLabelAnchor(i), Ink)
		}
		r.logger.Debug("drew top labels", "count", len(letters))
		for i, l := range letters {
			r.drawString(img, l, r.geom.LeftLabelAnchor(i), Ink)
		}
		r.logger.Debug("drew left labels", "count", len(letters))
	}

	return img
}

// drawGrid paints one vertical and one horizontal band per line.
func (r *Renderer) drawGrid(img *image.RGBA) {
	for i := 0; i < r.geom.BoardLines; i++ {
		generator.FillRect(img, r.geom.VerticalBand(i), Ink)
		generator.FillRect(img, r.geom.HorizontalBand(i), Ink)
	}
	r.logger.Debug("drew grid", "lines", r.geom.BoardLines, "extent", r.geom.Extent())
}

func (r *Renderer) drawStarPoints(img *image.RGBA) {
	pts := r.geom.StarPoints()
	for _, p := range pts {
		generator.FillDisk(img, p.X, p.Y, r.geom.StarRadius, Ink)
	}
	r.logger.Debug("drew star points", "count", len(pts), "radius", r.geom.StarRadius)
}

// drawString draws text with its line box's top-left corner at at.
func (r *Renderer) drawString(img *image.RGBA, text string, at image.Point, col color.Color) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.P(at.X, at.Y+r.ascent),
	}
	drawer.DrawString(text)
}
