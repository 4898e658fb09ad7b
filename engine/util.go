package engine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts v to the inclusive range [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// formatCentipawns renders a score in pawns with a sign, e.g. "+0.35".
func formatCentipawns(score int32) string {
	return fmt.Sprintf("%+.2f", float64(score)/100)
}
