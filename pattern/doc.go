// Package pattern is the deterministic generator core of seedgraph.
//
// A generation pass turns a Config (seed, point count, dot and line colour
// modes) into a drawing on a Surface:
//
//  1. A fresh prng.Mulberry32 is seeded from Config.Seed.
//  2. PlacePoints draws x then y for every point, inside a padding inset.
//  3. Render clears the surface to white, strokes every pair (i<j) of the
//     complete graph K_N, then fills one dot per point on top.
//  4. FormatSummary describes the pass in one line of text.
//
// Only point placement is driven by the seeded stream. Per-element colours in
// "colourful" mode come from a ColorSource: RandomColors (unseeded, the
// default) or SeededColors (a separate, derived mulberry32 stream) when the
// whole image must be reproducible.
//
// The package performs no I/O and does not log. Surfaces (raster PNG,
// SVG) live in sibling packages and only need to satisfy Surface.
//
// Quick example:
//
//	canvas := raster.New(pattern.DefaultWidth, pattern.DefaultHeight)
//	res, err := pattern.Generate(canvas, pattern.Config{
//		Seed:       1,
//		PointCount: 3,
//		Dots:       pattern.Fixed("#000000"),
//		Lines:      pattern.Fixed("#999999"),
//	})
//	// res.Summary == "Seed: 1 | Dots: 3 | Dot Color: #000000 | Line Color: #999999"
package pattern
