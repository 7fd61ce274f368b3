package ras2tin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient2d(t *testing.T) {
	assert.Positive(t, orient2d(0, 0, 1, 0, 0, 1, nil), "counterclockwise")
	assert.Negative(t, orient2d(0, 0, 0, 1, 1, 0, nil), "clockwise")
	assert.Zero(t, orient2d(0, 0, 1, 1, 2, 2, nil), "collinear")
	assert.Zero(t, orient2d(0.5, 0.5, 2.5, 2.5, 7.5, 7.5, nil), "collinear cell centers")
}

func TestOrient2dNearDegenerate(t *testing.T) {
	// A point a hair off a long diagonal: naive evaluation cancels badly,
	// the exact fallback must still report a consistent sign.
	st := &Stats{}
	s1 := orient2d(0, 0, 1e8, 1e8, 5e7, 5e7+1e-8, st)
	s2 := orient2d(0, 0, 1e8, 1e8, 5e7, 5e7-1e-8, st)
	assert.Positive(t, s1)
	assert.Negative(t, s2)
	assert.Positive(t, st.PredicateFallbacks)
}

func TestInCircle(t *testing.T) {
	// Unit circle through (1,0), (0,1), (-1,0) (counterclockwise).
	assert.Positive(t, inCircle(1, 0, 0, 1, -1, 0, 0, 0, nil), "center is inside")
	assert.Negative(t, inCircle(1, 0, 0, 1, -1, 0, 0, -2, nil), "far point is outside")
	assert.Zero(t, inCircle(1, 0, 0, 1, -1, 0, 0, -1, nil), "cocircular")
}
