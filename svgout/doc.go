// Package svgout implements pattern.Surface as a streaming SVG document
// written with github.com/ajstarks/svgo.
//
// The document is sized in pixels with a viewBox scaled by Scale, so output
// is resolution independent and keeps sub-pixel positions. Close must be
// called to terminate the document; it also writes the optional caption band
// laid out like the PNG export.
package svgout
