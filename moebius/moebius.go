package moebius

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Epsilon is the package-wide comparison tolerance used by
	// EqualUpToSign and the geometric packages built on top of moebius.
	Epsilon = 1e-9

	// DetEpsilon is the threshold below which a determinant counts as zero.
	DetEpsilon = 1e-12
)

var (
	// ErrSingular is returned when a matrix with a vanishing determinant
	// is normalized or inverted.
	ErrSingular = errors.New("moebius: determinant vanishes within tolerance")

	// ErrDegenerate is returned when a composition degenerates numerically
	// (non-finite entries or a collapsed determinant).
	ErrDegenerate = errors.New("moebius: composition degenerated numerically")
)

// Moebius is the 2×2 real matrix [A, B; C, D], acting on the upper
// half-plane as z ↦ (Az+B)/(Cz+D). Values are immutable: every operation
// returns a new Moebius.
type Moebius struct {
	A, B, C, D float64
}

// New constructs the matrix [a, b; c, d]. No validation happens here;
// use Normalize (or group.New) to enforce determinant ±1.
func New(a, b, c, d float64) Moebius {
	return Moebius{A: a, B: b, C: c, D: d}
}

// Identity returns the matrix [1, 0; 0, 1].
func Identity() Moebius {
	return Moebius{A: 1, D: 1}
}

// Det returns the determinant A·D − B·C.
func (m Moebius) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Trace returns A + D.
func (m Moebius) Trace() float64 {
	return m.A + m.D
}

// SquaredSum returns A²+B²+C²+D², the squared Frobenius norm.
func (m Moebius) SquaredSum() float64 {
	return m.A*m.A + m.B*m.B + m.C*m.C + m.D*m.D
}

// Norm returns the Frobenius norm √(A²+B²+C²+D²).
func (m Moebius) Norm() float64 {
	return math.Sqrt(m.SquaredSum())
}

// Neg returns −m, which acts identically on the hyperbolic plane.
func (m Moebius) Neg() Moebius {
	return Moebius{A: -m.A, B: -m.B, C: -m.C, D: -m.D}
}

// Scale returns s·m.
func (m Moebius) Scale(s float64) Moebius {
	return Moebius{A: s * m.A, B: s * m.B, C: s * m.C, D: s * m.D}
}

// finite reports whether every entry is a finite number.
func (m Moebius) finite() bool {
	return !math.IsNaN(m.A) && !math.IsInf(m.A, 0) &&
		!math.IsNaN(m.B) && !math.IsInf(m.B, 0) &&
		!math.IsNaN(m.C) && !math.IsInf(m.C, 0) &&
		!math.IsNaN(m.D) && !math.IsInf(m.D, 0)
}

// Normalize rescales m by 1/√|det| so the result has determinant ±1.
// The sign of the determinant is preserved. Returns ErrSingular if the
// determinant vanishes within DetEpsilon or any entry is non-finite.
func (m Moebius) Normalize() (Moebius, error) {
	if !m.finite() {
		return Moebius{}, fmt.Errorf("%w: non-finite entries in %v", ErrSingular, m)
	}
	det := m.Det()
	if math.Abs(det) <= DetEpsilon {
		return Moebius{}, fmt.Errorf("%w: det(%v) = %g", ErrSingular, m, det)
	}
	return m.Scale(1 / math.Sqrt(math.Abs(det))), nil
}

// Compose returns the matrix product m·n, so that the composed map applies
// n first and m second: (m∘n)(z) = m(n(z)). The product is renormalized to
// determinant ±1 before it is returned; ErrDegenerate signals numerical
// blow-up (the usual failure mode of very long words).
func (m Moebius) Compose(n Moebius) (Moebius, error) {
	p := Moebius{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
	if !p.finite() {
		return Moebius{}, fmt.Errorf("%w: non-finite product %v · %v", ErrDegenerate, m, n)
	}
	det := p.Det()
	if math.Abs(det) <= DetEpsilon {
		return Moebius{}, fmt.Errorf("%w: det collapsed to %g", ErrDegenerate, det)
	}
	return p.Scale(1 / math.Sqrt(math.Abs(det))), nil
}

// Inverse returns the inverse matrix via the closed-form adjugate divided
// by the determinant: [D, −B; −C, A] / det. For a normalized matrix
// (det = ±1) this always succeeds and is numerically stable, which is why
// no general inversion routine is used.
func (m Moebius) Inverse() Moebius {
	det := m.Det()
	return Moebius{A: m.D / det, B: -m.B / det, C: -m.C / det, D: m.A / det}
}

// EqualUpToSign reports whether m equals n or −n entrywise within Epsilon.
// PSL(2,ℝ) identifies M with −M, so this is the natural equality of
// hyperbolic isometries.
func (m Moebius) EqualUpToSign(n Moebius) bool {
	return m.entrywiseClose(n) || m.entrywiseClose(n.Neg())
}

// entrywiseClose compares all four entries with a combined
// absolute/relative tolerance.
func (m Moebius) entrywiseClose(n Moebius) bool {
	return close(m.A, n.A) && close(m.B, n.B) && close(m.C, n.C) && close(m.D, n.D)
}

// close reports |x−y| ≤ Epsilon·(1 + max(|x|,|y|)).
func close(x, y float64) bool {
	scale := math.Max(math.Abs(x), math.Abs(y))
	return math.Abs(x-y) <= Epsilon*(1+scale)
}

// String implements fmt.Stringer, e.g. "[2, 0; 0, 0.5]".
func (m Moebius) String() string {
	return fmt.Sprintf("[%g, %g; %g, %g]", m.A, m.B, m.C, m.D)
}
