// Package seedgraph renders reproducible "fully connected dot" patterns:
// N dots placed by a seeded mulberry32 generator, every pair joined by a
// thin line.
//
// The same seed always yields the same dots, on any platform:
//
//	prng/          mulberry32 generator and stream derivation
//	pattern/       placement, rendering onto a Surface, summary, input parsing
//	raster/        anti-aliased RGBA surface and PNG export with caption band
//	svgout/        streaming SVG surface
//	core/          thread-safe weighted graph
//	builder/       graph constructors (complete graph K_N)
//	prim_kruskal/  minimum spanning trees over the point graph
//	cmd/seedgraph  command-line front end with concurrent batch rendering
//
// Quick example:
//
//	canvas := raster.New(800, 600)
//	res, err := pattern.Generate(canvas, pattern.Config{
//		Seed:       1,
//		PointCount: 3,
//		Dots:       pattern.Fixed("#000000"),
//		Lines:      pattern.Fixed("#999999"),
//	})
//	// res.Summary == "Seed: 1 | Dots: 3 | Dot Color: #000000 | Line Color: #999999"
//	err = raster.Export(w, canvas.Image(), raster.WithCaption(res.Summary))
package seedgraph
