package pattern

import "fmt"

// FormatSummary returns the one-line description of a pass, e.g.
//
//	Seed: 1 | Dots: 3 | Dot Color: #000000 | Line Color: Colorful
func FormatSummary(seed uint32, pointCount int, dots, lines ColorMode) string {
	return fmt.Sprintf("Seed: %d | Dots: %d | Dot Color: %s | Line Color: %s",
		seed, pointCount, dots, lines)
}
