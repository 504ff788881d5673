package geometry_test

import (
	"math"
	"testing"

	"github.com/s-weil/fuchsian/geometry"
	"github.com/s-weil/fuchsian/moebius"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPoint_Domain rejects coordinates outside the open half-plane.
func TestNewPoint_Domain(t *testing.T) {
	_, err := geometry.NewPoint(0, 0)
	assert.ErrorIs(t, err, geometry.ErrPointOutOfDomain, "boundary point rejected")
	_, err = geometry.NewPoint(1, -2)
	assert.ErrorIs(t, err, geometry.ErrPointOutOfDomain, "lower half-plane rejected")
	_, err = geometry.NewPoint(0, math.Inf(1))
	assert.ErrorIs(t, err, geometry.ErrPointOutOfDomain, "infinite height rejected")

	p, err := geometry.NewPoint(-3, 0.25)
	require.NoError(t, err)
	assert.Equal(t, -3.0, p.Re())
	assert.Equal(t, 0.25, p.Im())
}

// TestPoint_Map checks the fractional-linear action on interior points.
func TestPoint_Map(t *testing.T) {
	i, err := geometry.NewPoint(0, 1)
	require.NoError(t, err)

	// z ↦ 4z
	a := moebius.New(2, 0, 0, 0.5)
	q, err := i.Map(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q.Re(), 1e-12)
	assert.InDelta(t, 4.0, q.Im(), 1e-12)

	// g = [3,2;4,3]: i ↦ (2+3i)/(3+4i) = (18+i)/25
	g := moebius.New(3, 2, 4, 3)
	q, err = i.Map(g)
	require.NoError(t, err)
	assert.InDelta(t, 18.0/25, q.Re(), 1e-12)
	assert.InDelta(t, 1.0/25, q.Im(), 1e-12)
}

// TestPoint_MapOutOfDomain verifies that an orientation-reversing matrix
// surfaces ErrPointOutOfDomain instead of a clamped point.
func TestPoint_MapOutOfDomain(t *testing.T) {
	i, _ := geometry.NewPoint(0, 1)

	// det < 0 maps the upper half-plane onto the lower one
	r := moebius.New(1, 0, 0, -1)
	_, err := i.Map(r)
	assert.ErrorIs(t, err, geometry.ErrPointOutOfDomain)

	// a point numerically indistinguishable from the pole of -1/z is
	// reported, not clamped
	s := moebius.New(0, -1, 1, 0)
	p, _ := geometry.NewPoint(0, 1e-12)
	_, err = p.Map(s)
	assert.ErrorIs(t, err, geometry.ErrPointOutOfDomain)
}

// TestPoint_RoundTrip is the engine invariant apply(inverse(a), apply(a, p)) = p.
func TestPoint_RoundTrip(t *testing.T) {
	p, _ := geometry.NewPoint(1, 3)
	for _, a := range []moebius.Moebius{
		moebius.New(3, 2, 4, 3),
		moebius.New(1, 1, 0, 1),
		moebius.New(0, -1, 1, 0),
	} {
		q, err := p.Map(a)
		require.NoError(t, err)
		back, err := q.Map(a.Inverse())
		require.NoError(t, err)
		assert.True(t, p.Equal(back), "round trip through %v", a)
	}
}

// TestPoint_IdentityFixedPoint asserts the identity fixes every point.
func TestPoint_IdentityFixedPoint(t *testing.T) {
	p, _ := geometry.NewPoint(-2.5, 0.75)
	q, err := p.Map(moebius.Identity())
	require.NoError(t, err)
	assert.True(t, p.Equal(q))
}

// TestDist checks hyperbolic distances on the imaginary axis and symmetry.
func TestDist(t *testing.T) {
	i, _ := geometry.NewPoint(0, 1)
	fourI, _ := geometry.NewPoint(0, 4)
	quarterI, _ := geometry.NewPoint(0, 0.25)

	assert.InDelta(t, math.Log(4), geometry.Dist(i, fourI), 1e-12, "dist(i, 4i) = ln 4")
	assert.InDelta(t, math.Log(4), geometry.Dist(i, quarterI), 1e-12, "dist(i, i/4) = ln 4")
	assert.InDelta(t, geometry.Dist(i, fourI), geometry.Dist(fourI, i), 1e-12, "symmetry")
	assert.InDelta(t, 0.0, geometry.Dist(i, i), 1e-12)
}

// TestDist_Invariance verifies distances are preserved by det-1 isometries.
func TestDist_Invariance(t *testing.T) {
	p, _ := geometry.NewPoint(1, 2)
	q, _ := geometry.NewPoint(-0.5, 0.5)
	g := moebius.New(3, 2, 4, 3)

	gp, err := p.Map(g)
	require.NoError(t, err)
	gq, err := q.Map(g)
	require.NoError(t, err)
	assert.InDelta(t, geometry.Dist(p, q), geometry.Dist(gp, gq), 1e-9)
}
