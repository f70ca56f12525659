package seidel_test

import (
	"fmt"

	"github.com/osuushi/seidel"
)

func ExampleTriangulate() {
	outer := []seidel.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	hole := []seidel.Point{
		{X: 3, Y: 3},
		{X: 3, Y: 7},
		{X: 7, Y: 7},
		{X: 7, Y: 3},
	}

	triangles, err := seidel.Triangulate([][]seidel.Point{outer, hole})
	if err != nil {
		panic(err)
	}
	// 8 vertices and one hole make 8 + 2 - 2 = 8 triangles.
	fmt.Println(len(triangles))
	// Output:
	// 8
}
