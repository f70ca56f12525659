package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/seidel"
)

// Triangulate polygons from stdin and write the result as SVG or PNG.
//
// Input is newline separated points in the form "x y", with contours
// separated by a blank line. The first contour is the outline and must wind
// counterclockwise; any further contours are holes and must wind clockwise.
// None of this is validated beyond what the triangulator itself checks.

var (
	out     = kingpin.Flag("out", "Output file; '-' for stdout (SVG only).").Short('o').Default("-").String()
	format  = kingpin.Flag("format", "Output format.").Default("svg").Enum("svg", "png")
	scale   = kingpin.Flag("scale", "Pixels per input unit.").Default("20").Float64()
	seed    = kingpin.Flag("seed", "RNG seed for the insertion order.").Default("0").Int64()
	entropy = kingpin.Flag("entropy", "Seed from the wall clock instead of --seed.").Bool()
	epsilon = kingpin.Flag("epsilon", "Comparison tolerance.").Default("1e-7").Float64()
	show    = kingpin.Flag("show", "Preview the PNG in the terminal (implies --format png).").Bool()
	indices = kingpin.Flag("indices", "Print triangle index triples to stdout instead of rendering.").Bool()
	dump    = kingpin.Flag("dump", "Dump the trapezoid map to stderr after the run.").Bool()
)

func main() {
	kingpin.Parse()

	contours, err := readContours(os.Stdin)
	if err != nil {
		kingpin.Fatalf("reading input: %v", err)
	}

	opts := []seidel.Option{seidel.WithEpsilon(*epsilon), seidel.WithSeed(*seed)}
	if *entropy {
		opts = append(opts, seidel.WithEntropy())
	}

	session := seidel.NewSession(opts...)
	triangles, err := session.Triangulate(contours)
	if err != nil {
		kingpin.Fatalf("triangulate: %v", err)
	}
	if *dump {
		session.DumpTrapezoids(os.Stderr)
	}

	if *indices {
		for _, t := range triangles {
			fmt.Printf("%d %d %d\n", t[0], t[1], t[2])
		}
		return
	}

	if *show || *format == "png" {
		path := *out
		if path == "-" {
			path = "/tmp/seidel_out.png"
		}
		if err := seidel.RenderPNG(path, contours, triangles, *scale); err != nil {
			kingpin.Fatalf("rendering: %v", err)
		}
		if *show {
			imgcat.CatFile(path, os.Stdout)
		}
		return
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			kingpin.Fatalf("creating output: %v", err)
		}
		defer f.Close()
		w = f
	}
	seidel.WriteSVG(w, contours, triangles, *scale)
}

func readContours(in *os.File) ([][]seidel.Point, error) {
	var contours [][]seidel.Point
	var points []seidel.Point

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current contour.
		if line == "" {
			if len(points) > 0 {
				contours = append(contours, points)
				points = nil
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) > 0 {
		contours = append(contours, points)
	}
	return contours, nil
}

func parsePoint(line string) (seidel.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return seidel.Point{}, fmt.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return seidel.Point{}, fmt.Errorf("bad x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return seidel.Point{}, fmt.Errorf("bad y value %q: %v", parts[1], err)
	}
	return seidel.Point{X: x, Y: y}, nil
}
