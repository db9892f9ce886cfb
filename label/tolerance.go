package label

import (
	"math"

	"github.com/iw2rmb/hyperlabel/geom"
)

const (
	toleranceStep   = 2.5
	toleranceLimit  = 15.0
	offsetsPerRound = 8
)

// toleranceRadii returns 2.5, 5, 7.5, ... below toleranceLimit.
func toleranceRadii() []float64 {
	var out []float64
	for i := 1; float64(i)*toleranceStep < toleranceLimit; i++ {
		out = append(out, float64(i)*toleranceStep)
	}
	return out
}

// toleranceOffsets returns the 8 probe offsets for radius r in search order:
// left, right, up, down, then the four diagonals on the same circle.
func toleranceOffsets(r float64) [offsetsPerRound]geom.Point {
	d := r / math.Sqrt2
	return [offsetsPerRound]geom.Point{
		{X: -r, Y: 0},
		{X: r, Y: 0},
		{X: 0, Y: -r},
		{X: 0, Y: r},
		{X: -d, Y: -d},
		{X: d, Y: d},
		{X: d, Y: -d},
		{X: -d, Y: d},
	}
}
