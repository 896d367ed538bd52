// SPDX-License-Identifier: MIT
// Package: seedgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum allowed for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not proceed
// (nil constructor, nil graph, or a core mutation failure).
var ErrConstructFailed = errors.New("builder: construction failed")
