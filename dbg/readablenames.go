package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// Table indices make for miserable debugging output: "trapezoid 37 absorbed
// trapezoid 41" reads much better as "BraveMarmot absorbed TidyHeron". This
// converts (table, index) pairs into memorable names lazily. It flagrantly
// leaks memory, which is fine, because nothing calls it outside of debugging
// output such as Session.DumpTrapezoids.

var memo = map[string]string{}

// Name a table row, e.g. Name("tr", 37). Non-positive indices are the nil
// sentinel.
func Name(table string, index int) string {
	if index <= 0 {
		return "Ø"
	}
	key := fmt.Sprintf("%s/%d", table, index)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Colored variant: green for trapezoids, cyan for query nodes, yellow for
// everything else, so mixed traces stay scannable.
func ColorName(table string, index int) string {
	name := Name(table, index)
	switch table {
	case "tr":
		return aurora.Green(name).String()
	case "qs":
		return aurora.Cyan(name).String()
	default:
		return aurora.Yellow(name).String()
	}
}
