package bls377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
)

// G1Jac is a point in Jacobian coordinates (x = X/Z², y = Y/Z³).
// Z == 0 marks the point at infinity; its canonical representative is (0, 1, 0).
type G1Jac struct {
	X, Y, Z fp.Element
}

// G1Affine is a point in affine coordinates; (0, 0) marks the point at infinity
type G1Affine struct {
	X, Y fp.Element
}

// Set sets p to a and returns p
func (p *G1Jac) Set(a *G1Jac) *G1Jac {
	p.X, p.Y, p.Z = a.X, a.Y, a.Z
	return p
}

// SetInfinity sets p to the point at infinity, (0, 1, 0)
func (p *G1Jac) SetInfinity() *G1Jac {
	p.X.SetZero()
	p.Y.SetOne()
	p.Z.SetZero()
	return p
}

// IsInfinity reports whether p is the point at infinity (Z == 0)
func (p *G1Jac) IsInfinity() bool {
	return p.Z.IsZero()
}

// IsNormalized reports whether p is the point at infinity or has Z == 1
func (p *G1Jac) IsNormalized() bool {
	return p.Z.IsZero() || p.Z.IsOne()
}

// Equal tests the projective equivalence of two Jacobian points:
// (X₁·Z₂² == X₂·Z₁²) && (Y₁·Z₂³ == Y₂·Z₁³).
// No field inversion is performed.
func (p *G1Jac) Equal(a *G1Jac) bool {
	if p.IsInfinity() {
		return a.IsInfinity()
	}
	if a.IsInfinity() {
		return false
	}

	var Z1Z1, Z2Z2, L, R fp.Element
	Z1Z1.Square(&p.Z)
	Z2Z2.Square(&a.Z)

	L.Mul(&p.X, &Z2Z2)
	R.Mul(&a.X, &Z1Z1)
	if !L.Equal(&R) {
		return false
	}

	L.Mul(&Z2Z2, &a.Z)
	L.Mul(&L, &p.Y)
	R.Mul(&Z1Z1, &p.Z)
	R.Mul(&R, &a.Y)
	return L.Equal(&R)
}

// Neg sets p to -a ((X, -Y, Z)); the point at infinity maps to itself
func (p *G1Jac) Neg(a *G1Jac) *G1Jac {
	p.Set(a)
	if !p.IsInfinity() {
		p.Y.Neg(&a.Y)
	}
	return p
}

// AddAssign sets p = p + a and returns p
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-add-2007-bl
func (p *G1Jac) AddAssign(curve *Curve, a *G1Jac) *G1Jac {
	if a.IsInfinity() {
		return p
	}
	if p.IsInfinity() {
		return p.Set(a)
	}

	var Z1Z1, Z2Z2, U1, U2, S1, S2 fp.Element

	// Z1Z1 = Z1²
	Z1Z1.Square(&p.Z)
	// Z2Z2 = Z2²
	Z2Z2.Square(&a.Z)
	// U1 = X1*Z2Z2
	U1.Mul(&p.X, &Z2Z2)
	// U2 = X2*Z1Z1
	U2.Mul(&a.X, &Z1Z1)
	// S1 = Y1*Z2*Z2Z2
	S1.Mul(&p.Y, &a.Z)
	S1.Mul(&S1, &Z2Z2)
	// S2 = Y2*Z1*Z1Z1
	S2.Mul(&a.Y, &p.Z)
	S2.Mul(&S2, &Z1Z1)

	// the two operands represent the same point, double instead
	if U1.Equal(&U2) && S1.Equal(&S2) {
		return p.DoubleAssign(curve)
	}

	// if a == -p, H == 0 and Z3 vanishes: the result is the point at infinity

	var H, I, J, r, V, t, X3, Y3, Z3 fp.Element

	// H = U2-U1
	H.Sub(&U2, &U1)
	// I = (2*H)²
	I.Double(&H)
	I.Square(&I)
	// J = H*I
	J.Mul(&H, &I)
	// r = 2*(S2-S1)
	r.Sub(&S2, &S1)
	r.Double(&r)
	// V = U1*I
	V.Mul(&U1, &I)

	// X3 = r²-J-2*V
	X3.Square(&r)
	X3.Sub(&X3, &J)
	t.Double(&V)
	X3.Sub(&X3, &t)

	// Y3 = r*(V-X3)-2*S1*J
	Y3.Sub(&V, &X3)
	Y3.Mul(&Y3, &r)
	t.Mul(&S1, &J)
	t.Double(&t)
	Y3.Sub(&Y3, &t)

	// Z3 = ((Z1+Z2)²-Z1Z1-Z2Z2)*H
	Z3.Add(&p.Z, &a.Z)
	Z3.Square(&Z3)
	Z3.Sub(&Z3, &Z1Z1)
	Z3.Sub(&Z3, &Z2Z2)
	Z3.Mul(&Z3, &H)

	p.X, p.Y, p.Z = X3, Y3, Z3
	return p
}

// AddMixed sets p = p + a where a is in affine coordinates, and returns p
// http://www.hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-madd-2007-bl
func (p *G1Jac) AddMixed(curve *Curve, a *G1Affine) *G1Jac {
	if a.IsInfinity() {
		return p
	}
	if p.IsInfinity() {
		p.X = a.X
		p.Y = a.Y
		p.Z.SetOne()
		return p
	}

	var Z1Z1, U2, S2 fp.Element

	// Z1Z1 = Z1²
	Z1Z1.Square(&p.Z)
	// U2 = X2*Z1Z1
	U2.Mul(&a.X, &Z1Z1)
	// S2 = Y2*Z1*Z1Z1
	S2.Mul(&a.Y, &p.Z)
	S2.Mul(&S2, &Z1Z1)

	// U2 and S2 live in p's frame: raw coordinate equality detects the
	// doubling case, not the projective equivalence test
	if U2.Equal(&p.X) && S2.Equal(&p.Y) {
		return p.DoubleAssign(curve)
	}

	var H, HH, I, J, r, V, t, X3, Y3, Z3 fp.Element

	// H = U2-X1
	H.Sub(&U2, &p.X)
	// HH = H²
	HH.Square(&H)
	// I = 4*HH
	I.Double(&HH)
	I.Double(&I)
	// J = H*I
	J.Mul(&H, &I)
	// r = 2*(S2-Y1)
	r.Sub(&S2, &p.Y)
	r.Double(&r)
	// V = X1*I
	V.Mul(&p.X, &I)

	// X3 = r²-J-2*V
	X3.Square(&r)
	X3.Sub(&X3, &J)
	t.Double(&V)
	X3.Sub(&X3, &t)

	// Y3 = r*(V-X3)-2*Y1*J
	Y3.Sub(&V, &X3)
	Y3.Mul(&Y3, &r)
	t.Mul(&p.Y, &J)
	t.Double(&t)
	Y3.Sub(&Y3, &t)

	// Z3 = (Z1+H)²-Z1Z1-HH
	Z3.Add(&p.Z, &H)
	Z3.Square(&Z3)
	Z3.Sub(&Z3, &Z1Z1)
	Z3.Sub(&Z3, &HH)

	p.X, p.Y, p.Z = X3, Y3, Z3
	return p
}

// SubAssign sets p = p - a and returns p
func (p *G1Jac) SubAssign(curve *Curve, a *G1Jac) *G1Jac {
	var n G1Jac
	n.Neg(a)
	return p.AddAssign(curve, &n)
}

// Double sets p = 2*a and returns p
func (p *G1Jac) Double(curve *Curve, a *G1Jac) *G1Jac {
	p.Set(a)
	return p.DoubleAssign(curve)
}

// DoubleAssign doubles p in place and returns p.
// The formula is picked by the aIsZero flag of the curve parameters.
func (p *G1Jac) DoubleAssign(curve *Curve) *G1Jac {
	if p.IsInfinity() {
		return p
	}
	if curve.aIsZero {
		p.doubleA0()
	} else {
		p.doubleGeneric(curve)
	}
	return p
}

// doubleA0 is the doubling formula specialized for curves with a = 0
func (p *G1Jac) doubleA0() {
	var A, B, C, D, E, F, t, X3, Y3, Z3 fp.Element

	// A = X1²
	A.Square(&p.X)
	// B = Y1²
	B.Square(&p.Y)
	// C = B²
	C.Square(&B)

	// D = 2*((X1+B)²-A-C)
	D.Add(&p.X, &B)
	D.Square(&D)
	D.Sub(&D, &A)
	D.Sub(&D, &C)
	D.Double(&D)

	// E = 3*A
	E.Double(&A)
	E.Add(&E, &A)
	// F = E²
	F.Square(&E)

	// Z3 = 2*Y1*Z1
	Z3.Mul(&p.Y, &p.Z)
	Z3.Double(&Z3)

	// X3 = F-2*D
	t.Double(&D)
	X3.Sub(&F, &t)

	// Y3 = E*(D-X3)-8*C
	C.Double(&C)
	C.Double(&C)
	C.Double(&C)
	Y3.Sub(&D, &X3)
	Y3.Mul(&Y3, &E)
	Y3.Sub(&Y3, &C)

	p.X, p.Y, p.Z = X3, Y3, Z3
}

// doubleGeneric handles a ≠ 0 via the M = 3*XX + a*ZZ² term
// http://www.hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2009-l
func (p *G1Jac) doubleGeneric(curve *Curve) {
	var XX, YY, YYYY, ZZ, S, M, T, t, X3, Y3, Z3 fp.Element

	// XX = X1²
	XX.Square(&p.X)
	// YY = Y1²
	YY.Square(&p.Y)
	// YYYY = YY²
	YYYY.Square(&YY)
	// ZZ = Z1²
	ZZ.Square(&p.Z)

	// S = 2*((X1+YY)²-XX-YYYY)
	S.Add(&p.X, &YY)
	S.Square(&S)
	S.Sub(&S, &XX)
	S.Sub(&S, &YYYY)
	S.Double(&S)

	// M = 3*XX+a*ZZ²
	M.Double(&XX)
	M.Add(&M, &XX)
	t.Square(&ZZ)
	curve.mulByA(&t, &t)
	M.Add(&M, &t)

	// T = M²-2*S, X3 = T
	T.Square(&M)
	t.Double(&S)
	T.Sub(&T, &t)
	X3 = T

	// Y3 = M*(S-T)-8*YYYY
	YYYY.Double(&YYYY)
	YYYY.Double(&YYYY)
	YYYY.Double(&YYYY)
	Y3.Sub(&S, &T)
	Y3.Mul(&Y3, &M)
	Y3.Sub(&Y3, &YYYY)

	// Z3 = (Y1+Z1)²-YY-ZZ
	Z3.Add(&p.Y, &p.Z)
	Z3.Square(&Z3)
	Z3.Sub(&Z3, &YY)
	Z3.Sub(&Z3, &ZZ)

	p.X, p.Y, p.Z = X3, Y3, Z3
}

// FromAffine lifts a to Jacobian coordinates (Z = 1, unless a is the point at
// infinity) and returns p
func (p *G1Jac) FromAffine(a *G1Affine) *G1Jac {
	if a.IsInfinity() {
		return p.SetInfinity()
	}
	p.X = a.X
	p.Y = a.Y
	p.Z.SetOne()
	return p
}

func (p *G1Jac) String() string {
	if p.IsInfinity() {
		return "O"
	}
	var a G1Affine
	a.FromJacobian(p)
	return a.String()
}

// Set sets p to a and returns p
func (p *G1Affine) Set(a *G1Affine) *G1Affine {
	p.X, p.Y = a.X, a.Y
	return p
}

// IsInfinity reports whether p is the point at infinity, (0, 0)
func (p *G1Affine) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal tests coordinate equality of two affine points
func (p *G1Affine) Equal(a *G1Affine) bool {
	return p.X.Equal(&a.X) && p.Y.Equal(&a.Y)
}

// Neg sets p to -a; the point at infinity maps to itself
func (p *G1Affine) Neg(a *G1Affine) *G1Affine {
	p.Set(a)
	if !p.IsInfinity() {
		p.Y.Neg(&a.Y)
	}
	return p
}

// FromJacobian normalizes a into affine coordinates (one field inversion) and
// returns p
func (p *G1Affine) FromJacobian(a *G1Jac) *G1Affine {
	if a.IsInfinity() {
		p.X.SetZero()
		p.Y.SetZero()
		return p
	}
	var zInv, zInv2 fp.Element
	zInv.Inverse(&a.Z)
	zInv2.Square(&zInv)
	p.X.Mul(&a.X, &zInv2)
	zInv2.Mul(&zInv2, &zInv)
	p.Y.Mul(&a.Y, &zInv2)
	return p
}

func (p *G1Affine) String() string {
	if p.IsInfinity() {
		return "O"
	}
	return "E([" + p.X.String() + "," + p.Y.String() + "])"
}
