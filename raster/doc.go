// Package raster implements pattern.Surface on an in-memory RGBA image and
// exports finished canvases as PNG.
//
// Shapes are rasterised with golang.org/x/image/vector, which computes exact
// per-pixel coverage, so a 0.7 px line is drawn as a faint anti-aliased
// stroke rather than a jagged one-pixel run:
//
//   - StrokeLine fills the quad spanned by the segment and its width (butt caps).
//   - FillCircle fills four cubic Bézier arcs.
//   - Clear overwrites every pixel.
//
// Each shape is rasterised inside its own clipped bounding box, so cost is
// proportional to the shape, not to the canvas.
//
// Export writes the canvas as PNG, optionally followed by a caption band:
// a 40 px white strip with the caption centred in 14 px Go Regular, black,
// on a baseline 25 px below the canvas.
package raster
