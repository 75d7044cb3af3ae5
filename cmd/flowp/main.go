package main

// Demo of one-step flowpipe approximation. Vertex lists are read from stdin
// as newline separated points in the form "x y", with lists separated by a
// blank line: the first list is the initial region, the optional second is
// the bloating region.
//
// Without --render the named polytope records are printed; with --render
// they are drawn to a PNG instead.

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/reachset/flowp"
	"github.com/reachset/flowp/render"
)

var (
	flowSpec = kingpin.Flag("flow", "Flow matrix as four row-major entries a,b,c,d.").Default("0,-1,1,0").String()
	step     = kingpin.Flag("step", "Step size (time horizon) of the approximation.").Default("1").Float64()
	doRender = kingpin.Flag("render", "Draw the result to a PNG instead of printing it.").Bool()
	out      = kingpin.Flag("out", "Output path for --render. Defaults to a random name in the temp dir.").String()
	show     = kingpin.Flag("show", "Cat the rendered image to the terminal (implies --render).").Bool()
	scale    = kingpin.Flag("scale", "Pixels per coordinate unit for --render.").Default("100").Float64()
)

var nameColors = []func(interface{}) aurora.Value{
	aurora.Green,
	aurora.Cyan,
	aurora.Magenta,
	aurora.Yellow,
}

func main() {
	kingpin.Parse()

	flow, err := parseFlow(*flowSpec)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	regions := readRegions(os.Stdin)
	if len(regions) == 0 {
		kingpin.Fatalf("no initial region on stdin")
	}
	if len(regions) > 2 {
		kingpin.Fatalf("expected at most two regions (initial, bloating), got %d", len(regions))
	}
	initial := regions[0]
	var bloating []*flowp.Point
	if len(regions) == 2 {
		bloating = regions[1]
	}

	opts := []flowp.Option{flowp.WithStepSize(*step)}
	var png *render.PNG
	if *doRender || *show {
		png = render.New(render.Options{Path: *out, Scale: *scale, Show: *show})
		opts = append(opts, flowp.WithRenderer(png))
	}

	polytopes, err := flowp.Approx(initial, flow, bloating, opts...)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	if png != nil {
		fmt.Printf("wrote %s\n", png.Path())
		return
	}

	for i, poly := range polytopes {
		colorize := nameColors[i%len(nameColors)]
		fmt.Println(colorize(poly.Name))
		for _, p := range poly.Vertices {
			fmt.Printf("  %g %g\n", p.X, p.Y)
		}
	}
}

func readRegions(in *os.File) [][]*flowp.Point {
	regions := [][]*flowp.Point{}
	scanner := bufio.NewScanner(in)
	points := []*flowp.Point{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current region, if any points were collected
		if line == "" {
			if len(points) > 0 {
				regions = append(regions, points)
				points = []*flowp.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			kingpin.Fatalf("%v", err)
		}
		points = append(points, point)
	}

	// Handle trailing region if any
	if len(points) > 0 {
		regions = append(regions, points)
	}
	return regions
}

func parsePoint(line string) (*flowp.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad x value in %q", line)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad y value in %q", line)
	}
	return &flowp.Point{X: x, Y: y}, nil
}

func parseFlow(spec string) (flowp.Matrix, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return flowp.Matrix{}, errors.Errorf("flow needs 4 entries, got %d", len(parts))
	}
	var entries [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return flowp.Matrix{}, errors.Wrapf(err, "bad flow entry %q", part)
		}
		entries[i] = v
	}
	return flowp.Matrix{
		{entries[0], entries[1]},
		{entries[2], entries[3]},
	}, nil
}
