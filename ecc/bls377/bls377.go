// Package bls377 implements the BLS12-377 G1 group in Jacobian coordinates:
// group law, GLV scalar multiplication, batch normalization, serialization
// and subgroup sampling.
//
// bls12-377: a Barreto--Lynn--Scott curve with
//
//	seed x₀ = 9586122913090633729
//	𝔽r: r = 8444461749428370424248824938781546531375899335154063827935233455917409239041 (x₀⁴-x₀²+1)
//	(E/𝔽p): Y² = X³+1
//
// Field arithmetic is provided by gnark-crypto; this package owns the group
// structure only.
package bls377

import (
	"math/big"
	"sync"

	gecc "github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

var bls377 Curve
var initOnce sync.Once

// BLS377 returns the BLS12-377 G1 curve singleton
func BLS377() *Curve {
	initOnce.Do(initBLS377)
	return &bls377
}

// Curve represents the BLS12-377 G1 group and its precomputed constants
type Curve struct {
	A, B fp.Element // coefficients of the curve y² = x³ + A·x + B

	// selects the doubling formula; resolved once at construction, never per call
	aIsZero bool

	g1Gen    G1Jac // generator of the prime order r-torsion
	g1GenAff G1Affine

	g1Infinity G1Jac // point at infinity, (0, 1, 0)

	// GLV parameters. thirdRootOne is a primitive cube root of unity in 𝔽p and
	// defines the endomorphism φ(x, y) = (thirdRootOne·x, y); lambda is the
	// eigenvalue of φ on G1 (φ(P) = [lambda]P); glvBasis stores R-linearly
	// independent short vectors of ker((u,v) → u+vλ [r]) and their determinant
	thirdRootOne fp.Element
	lambda       big.Int
	glvBasis     gecc.Lattice

	cofactor big.Int // #E(𝔽p) / r = (x₀-1)²/3
}

// seed x₀ of the curve
var xGen big.Int

func initBLS377() {
	bls377.A.SetZero()
	bls377.B.SetOne()
	bls377.aIsZero = bls377.A.IsZero()

	bls377.g1Gen.X.SetString("81937999373150964239938255573465948239988671502647976594219695644855304257327692006745978603320413799295628339695")
	bls377.g1Gen.Y.SetString("241266749859715473739788878240585681733927191168601896383759122102112907357779751001206799952863815012735208165030")
	bls377.g1Gen.Z.SetOne()
	bls377.g1GenAff.FromJacobian(&bls377.g1Gen)

	bls377.g1Infinity.Y.SetOne()

	bls377.thirdRootOne.SetString("80949648264912719408558363140637477264845294720710499478137287262712535938301461879813459410945")
	bls377.lambda.SetString("91893752504881257701523279626832445440", 10) // x₀²-1
	gecc.PrecomputeLattice(fr.Modulus(), &bls377.lambda, &bls377.glvBasis)

	xGen.SetString("9586122913090633729", 10)

	// cofactor = (x₀-1)²/3
	var xMinusOne big.Int
	xMinusOne.Sub(&xGen, big.NewInt(1))
	bls377.cofactor.Mul(&xMinusOne, &xMinusOne)
	bls377.cofactor.Div(&bls377.cofactor, big.NewInt(3))
}

// Generator returns the generator of the r-torsion in Jacobian coordinates
func (curve *Curve) Generator() G1Jac {
	return curve.g1Gen
}

// GeneratorAffine returns the generator of the r-torsion in affine coordinates
func (curve *Curve) GeneratorAffine() G1Affine {
	return curve.g1GenAff
}

// Infinity returns the point at infinity, (0, 1, 0)
func (curve *Curve) Infinity() G1Jac {
	return curve.g1Infinity
}

// CurveCoefficients returns the a, b coefficients of the curve equation
func (curve *Curve) CurveCoefficients() (a, b fp.Element) {
	return curve.A, curve.B
}

// mulByA sets z = A·x. The a = 0 doubling branch never calls it.
func (curve *Curve) mulByA(z, x *fp.Element) {
	z.Mul(x, &curve.A)
}
