package moebius_test

import (
	"math"
	"testing"

	"github.com/s-weil/fuchsian/moebius"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMoebius_DetTraceNorm verifies the basic matrix scalars.
func TestMoebius_DetTraceNorm(t *testing.T) {
	m := moebius.New(1, 2, 3, 4)
	assert.InDelta(t, -2.0, m.Det(), 1e-15, "det([1,2;3,4]) = -2")
	assert.InDelta(t, 5.0, m.Trace(), 1e-15, "trace = 1+4")
	assert.InDelta(t, 30.0, m.SquaredSum(), 1e-15, "squared Frobenius norm")
	assert.InDelta(t, math.Sqrt(30), m.Norm(), 1e-15)
}

// TestMoebius_Normalize covers rescaling toward determinant ±1 and the
// rejection of singular matrices.
func TestMoebius_Normalize(t *testing.T) {
	// det == 1 stays untouched
	m, err := moebius.New(2, 1, 1, 1).Normalize()
	require.NoError(t, err)
	assert.Equal(t, moebius.New(2, 1, 1, 1), m)

	// [4,2;2,2] has det 4 and projects onto [2,1;1,1]
	m, err = moebius.New(4, 2, 2, 2).Normalize()
	require.NoError(t, err)
	assert.True(t, m.EqualUpToSign(moebius.New(2, 1, 1, 1)), "projection onto det 1")

	// positive determinant normalizes to +1
	m, err = moebius.New(-1, -2, 3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Det(), 1e-12)

	// negative determinant normalizes to -1, sign preserved
	m, err = moebius.New(1, 2, 3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, -1.0, m.Det(), 1e-12)

	// singular matrix rejected
	_, err = moebius.New(1, 2, 2, 4).Normalize()
	assert.ErrorIs(t, err, moebius.ErrSingular, "det 0 must be rejected")

	// non-finite entries rejected
	_, err = moebius.New(math.Inf(1), 0, 0, 1).Normalize()
	assert.ErrorIs(t, err, moebius.ErrSingular, "Inf entries must be rejected")
}

// TestMoebius_Compose checks the matrix product and the mandatory
// determinant renormalization.
func TestMoebius_Compose(t *testing.T) {
	g := moebius.New(3, 2, 4, 3)   // det 1
	h := moebius.New(-3, 2, -5, 3) // det 1

	gh, err := g.Compose(h)
	require.NoError(t, err)
	assert.True(t, gh.EqualUpToSign(moebius.New(-19, 12, -27, 17)), "g·h = [-19,12;-27,17]")
	assert.InDelta(t, 1.0, gh.Det(), 1e-12, "determinant stays 1 after composition")

	// non-normalized inputs come out normalized
	p, err := moebius.New(-1, 2, -3, 4).Compose(moebius.New(-5, 7, 1, 5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, math.Abs(p.Det()), 1e-12, "|det| renormalized to 1")
	assert.True(t, p.EqualUpToSign(moebius.New(7, 3, 19, -1).Scale(1/8.0)), "scaled product")
}

// TestMoebius_ComposeDegenerate verifies that numerical blow-up is
// reported instead of propagating Inf entries.
func TestMoebius_ComposeDegenerate(t *testing.T) {
	a := moebius.New(1e155, 0, 0, 1e-155) // det 1, but a·a overflows
	_, err := a.Compose(a)
	assert.ErrorIs(t, err, moebius.ErrDegenerate)
}

// TestMoebius_Inverse checks the closed-form adjugate inverse for both
// determinant signs.
func TestMoebius_Inverse(t *testing.T) {
	g := moebius.New(3, 2, 4, 3) // det 1
	inv := g.Inverse()
	assert.Equal(t, moebius.New(3, -2, -4, 3), inv, "adjugate for det 1")

	id, err := g.Compose(inv)
	require.NoError(t, err)
	assert.True(t, id.EqualUpToSign(moebius.Identity()), "g·g⁻¹ = 1")

	// det -1 matrix still inverts via adjugate / det
	r := moebius.New(1, 0, 0, -1)
	id, err = r.Compose(r.Inverse())
	require.NoError(t, err)
	assert.True(t, id.EqualUpToSign(moebius.Identity()), "r·r⁻¹ = 1 for det -1")
}

// TestMoebius_InverseRoundTrip is the engine invariant:
// inverse(compose(a, inverse(a))) equals the identity within tolerance.
func TestMoebius_InverseRoundTrip(t *testing.T) {
	for _, a := range []moebius.Moebius{
		moebius.New(3, 2, 4, 3),
		moebius.New(1, 1, 0, 1),
		moebius.New(0, -1, 1, 0),
		moebius.New(2, 0, 0, 0.5),
	} {
		c, err := a.Compose(a.Inverse())
		require.NoError(t, err)
		assert.True(t, c.Inverse().EqualUpToSign(moebius.Identity()), "a = %v", a)
	}
}

// TestMoebius_EqualUpToSign exercises the PSL(2,R) identification of M
// with −M.
func TestMoebius_EqualUpToSign(t *testing.T) {
	m := moebius.New(1.1, 2.0, -0.5, 3.0)
	assert.True(t, m.EqualUpToSign(m))
	assert.True(t, m.EqualUpToSign(m.Neg()), "M ≡ −M")
	assert.False(t, m.EqualUpToSign(moebius.New(1.1, 2.0, -0.5, 3.1)))

	// tolerance absorbs tiny drift
	drift := moebius.New(1.1+1e-12, 2.0, -0.5, 3.0-1e-12)
	assert.True(t, m.EqualUpToSign(drift))
}

// TestMoebius_Kind classifies the three isometry types by trace.
func TestMoebius_Kind(t *testing.T) {
	assert.Equal(t, moebius.Parabolic, moebius.New(1, 1, 0, 1).Kind(), "z+1 is parabolic")
	assert.Equal(t, moebius.Elliptic, moebius.New(0, -1, 1, 0).Kind(), "-1/z is elliptic")
	assert.Equal(t, moebius.Hyperbolic, moebius.New(2, 0, 0, 0.5).Kind(), "4z is hyperbolic")
	assert.Equal(t, moebius.Parabolic, moebius.New(-1, 3, 0, -1).Kind(), "trace -2 is parabolic")
}

// TestMoebius_Immutability confirms operations return new values and
// never touch the receiver.
func TestMoebius_Immutability(t *testing.T) {
	m := moebius.New(3, 2, 4, 3)
	_ = m.Neg()
	_ = m.Scale(7)
	_ = m.Inverse()
	if _, err := m.Compose(m); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, moebius.New(3, 2, 4, 3), m)
}
