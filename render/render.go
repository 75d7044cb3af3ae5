// Package render draws the polytope records produced by flowp.Approx as
// filled, labeled polygons on a PNG canvas. It is the visualization
// collaborator of the approximator; numerical correctness lives entirely on
// the other side of the flowp.Renderer interface.
package render

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/reachset/flowp"
)

const (
	padding = 40
	// Labels anchor slightly below each polytope's first hull vertex, in
	// coordinate units.
	labelOffset = 0.1
)

type Options struct {
	// Path of the output PNG. When empty, a readable random name under the
	// system temp directory is generated so repeated runs don't clobber
	// each other.
	Path string
	// Scale in pixels per coordinate unit. Defaults to 100.
	Scale float64
	// Show cats the finished image to the terminal after saving (inline
	// images, iTerm2 style).
	Show bool
}

// PNG renders polytope records to a single PNG image. It implements
// flowp.Renderer.
type PNG struct {
	opts Options
}

func New(opts Options) *PNG {
	if opts.Scale <= 0 {
		opts.Scale = 100
	}
	if opts.Path == "" {
		opts.Path = filepath.Join(os.TempDir(), fmt.Sprintf("flowp_%s.png", petname.Generate(2, "_")))
	}
	return &PNG{opts: opts}
}

// Path returns where the image was (or will be) written.
func (r *PNG) Path() string { return r.opts.Path }

func (r *PNG) Render(polytopes []flowp.Polytope) error {
	if len(polytopes) == 0 {
		return errors.New("render: no polytopes to draw")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range polytopes {
		for _, p := range poly.Vertices {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	scale := r.opts.Scale
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Label anchors are captured in screen space while the transform is
	// active; drawing text under the flipped scale would mirror it.
	type label struct {
		name string
		x, y float64
	}
	labels := make([]label, 0, len(polytopes))

	c.SetLineWidth(2)
	for _, poly := range polytopes {
		c.MoveTo(poly.Vertices[0].X, poly.Vertices[0].Y)
		for _, p := range poly.Vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()

		// Random translucent fill with an opaque stroke of the same hue.
		// The styling carries no meaning, so the randomness is unseeded.
		red, green, blue := rand.Float64(), rand.Float64(), rand.Float64()
		c.SetRGBA(red, green, blue, 0.2)
		c.FillPreserve()
		c.SetRGB(red, green, blue)
		c.Stroke()

		// Anchor the label just below the polytope's first hull vertex.
		x, y := c.TransformPoint(poly.Vertices[0].X, poly.Vertices[0].Y-labelOffset)
		labels = append(labels, label{name: poly.Name, x: x, y: y})
	}

	c.Identity()
	c.SetRGB(0, 0, 0)
	for _, l := range labels {
		c.DrawString(l.name, l.x, l.y)
	}

	if err := c.SavePNG(r.opts.Path); err != nil {
		return errors.Wrapf(err, "render: saving %s", r.opts.Path)
	}
	if r.opts.Show {
		imgcat.CatFile(r.opts.Path, os.Stdout)
	}
	return nil
}
