// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// input.go - parsing of user-supplied seed and point-count text, random
// seeds, and export file names.

package pattern

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// RandomSeedLimit bounds RandomSeed to [0, RandomSeedLimit).
const RandomSeedLimit = 100_000_000

// ParseSeed parses a seed made of ASCII decimal digits only. Values beyond
// 32 bits are reduced modulo 2^32, the value the generator accumulator holds.
func ParseSeed(s string) (uint32, error) {
	if s == "" {
		return 0, ErrEmptySeed
	}

	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("ParseSeed(%q): %w", s, ErrSeedNotNumeric)
		}
		v = v*10 + uint32(c-'0')
	}

	return v, nil
}

// RandomSeed returns an unseeded random seed in [0, RandomSeedLimit).
func RandomSeed() uint32 {
	return uint32(rand.Int63n(RandomSeedLimit))
}

// ParsePointCount reads a leading, optionally signed, integer from s.
// Empty, non-numeric, overflowing and zero values fall back to
// DefaultPointCount. Negative values are returned as is and draw nothing.
func ParsePointCount(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultPointCount
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return DefaultPointCount
	}

	return n
}

// ExportFileName returns "pattern_seed<seed>.<ext>", using "random" when the
// seed text is empty.
func ExportFileName(seedText, ext string) string {
	if seedText == "" {
		seedText = "random"
	}
	return "pattern_seed" + seedText + "." + strings.TrimPrefix(ext, ".")
}
