package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedgraph/pattern"
	"github.com/katalvlaran/seedgraph/prng"
)

func TestPlacePoints_SeedOneReference(t *testing.T) {
	pts := pattern.PlacePoints(prng.New(1), 3, 800, 600, pattern.DefaultPadding)
	require.Equal(t, seedOnePoints, pts)
}

func TestPlacePoints_Count(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 100} {
		pts := pattern.PlacePoints(prng.New(5), n, 800, 600, pattern.DefaultPadding)
		assert.Len(t, pts, n)
	}

	neg := pattern.PlacePoints(prng.New(5), -4, 800, 600, pattern.DefaultPadding)
	assert.NotNil(t, neg)
	assert.Empty(t, neg)
}

func TestPlacePoints_TwoDrawsPerPointXFirst(t *testing.T) {
	r := prng.New(77)
	pts := pattern.PlacePoints(r, 5, 800, 600, pattern.DefaultPadding)
	inc := prng.Increment
	assert.Equal(t, uint32(77)+10*inc, r.State(), "two draws per point")

	ref := prng.New(77)
	for _, p := range pts {
		wantX := 20 + ref.Next()*760
		wantY := 20 + ref.Next()*560
		assert.InDelta(t, wantX, p.X, 1e-9)
		assert.InDelta(t, wantY, p.Y, 1e-9)
	}
}

func TestPlacePoints_Bounds(t *testing.T) {
	const (
		w, h    = 640, 480
		padding = pattern.DefaultPadding
	)
	for seed := uint32(0); seed < 200; seed++ {
		for _, p := range pattern.PlacePoints(prng.New(seed), 50, w, h, padding) {
			require.GreaterOrEqual(t, p.X, padding)
			require.LessOrEqual(t, p.X, w-padding)
			require.GreaterOrEqual(t, p.Y, padding)
			require.LessOrEqual(t, p.Y, h-padding)
		}
	}
}

func TestPlacePoints_Deterministic(t *testing.T) {
	a := pattern.PlacePoints(prng.New(2024), 40, 800, 600, 20)
	b := pattern.PlacePoints(prng.New(2024), 40, 800, 600, 20)
	assert.Equal(t, a, b)

	c := pattern.PlacePoints(prng.New(2025), 40, 800, 600, 20)
	assert.NotEqual(t, a, c)
}
