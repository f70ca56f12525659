package seidel

import (
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering helpers for inspecting a triangulation. The SVG writer is the
// useful one; the PNG path exists mostly so a triangulation can be eyeballed
// straight in the terminal while debugging.

const drawPadding = 10

func bounds(contours [][]Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, contour := range contours {
		for _, p := range contour {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

// WriteSVG renders the contours and their triangulation. Coordinates are
// scaled up and flipped so the origin sits at the bottom left, the way the
// inputs are usually drawn.
func WriteSVG(w io.Writer, contours [][]Point, triangles []Triangle, scale float64) {
	minX, minY, maxX, maxY := bounds(contours)
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2

	// Flatten the vertices the same way the triangulator numbers them.
	verts := make([]Point, 1)
	for _, contour := range contours {
		verts = append(verts, contour...)
	}
	toX := func(p Point) int { return drawPadding + int(scale*(p.X-minX)) }
	toY := func(p Point) int { return height - drawPadding - int(scale*(p.Y-minY)) }

	canvas := svg.New(w)
	canvas.Start(width, height)
	for _, t := range triangles {
		xs := []int{toX(verts[t[0]]), toX(verts[t[1]]), toX(verts[t[2]])}
		ys := []int{toY(verts[t[0]]), toY(verts[t[1]]), toY(verts[t[2]])}
		canvas.Polygon(xs, ys, "fill:#e0ffe0;stroke:#008000;stroke-width:1")
	}
	for _, contour := range contours {
		xs := make([]int, len(contour))
		ys := make([]int, len(contour))
		for i, p := range contour {
			xs[i] = toX(p)
			ys[i] = toY(p)
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:#000000;stroke-width:2")
	}
	canvas.End()
}

// RenderPNG draws the triangulation to a PNG file.
func RenderPNG(path string, contours [][]Point, triangles []Triangle, scale float64) error {
	minX, minY, maxX, maxY := bounds(contours)
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2

	verts := make([]Point, 1)
	for _, contour := range contours {
		verts = append(verts, contour...)
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range triangles {
		a, b, d := verts[t[0]], verts[t[1]], verts[t[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.SavePNG(path)
}

// dbgShow renders to a scratch PNG and cats it straight into the terminal.
func dbgShow(contours [][]Point, triangles []Triangle, scale float64) {
	const path = "/tmp/seidel_debug.png"
	if err := RenderPNG(path, contours, triangles, scale); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
