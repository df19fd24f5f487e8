package bls377

import (
	"math/big"

	gecc "github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/jovevkystax5a/snarkVM/ecc"
)

// scalar multiplication window: width-5 wNAF digits (odd, in (-16, 16)) over
// the two GLV sub-scalars
const glvWindowSize = 4

// the precomputed table holds [P, 3P, 5P, ..., 15P]
const glvTableSize = 1 << (glvWindowSize - 1)

// upper bound on the wNAF length of a GLV sub-scalar (~⌈log₂√r⌉ bits, plus
// slack for the signed recoding carry)
const glvNafBound = 8 + fr.Bits/2

// ScalarMul sets p = [s]a and returns p.
//
// The scalar is split with the curve endomorphism into two half-length
// sub-scalars (GLV), each recoded in width-5 wNAF; their digit streams are
// combined most significant first, interleaved between the two precomputed
// tables with a single shared doubling per position.
func (p *G1Jac) ScalarMul(curve *Curve, a *G1Jac, s *fr.Element) *G1Jac {

	k1, k2, neg1, neg2 := curve.decomposeScalar(s)

	// T1 = [a, 3a, 5a, ..., 15a]: one mixed addition of 2a per entry,
	// then a single shared inversion to go affine
	var d G1Jac
	d.Double(curve, a)
	var dAff G1Affine
	dAff.FromJacobian(&d)

	t1 := make([]G1Jac, glvTableSize)
	t1[0].Set(a)
	for i := 1; i < glvTableSize; i++ {
		t1[i].Set(&t1[i-1])
		t1[i].AddMixed(curve, &dAff)
	}
	t1Aff := BatchJacobianToAffine(t1)

	// T2 = φ(T1)
	t2Aff := make([]G1Affine, glvTableSize)
	for i := range t1Aff {
		curve.phi(&t2Aff[i], &t1Aff[i])
	}

	// recode the sub-scalars; a negative sub-scalar flips all its digits,
	// folding the decomposition sign into the wNAF signs
	var naf1, naf2 [glvNafBound]int8
	l1 := ecc.WNafDecomposition(&k1, glvWindowSize, naf1[:])
	l2 := ecc.WNafDecomposition(&k2, glvWindowSize, naf2[:])
	if neg1 {
		negateDigits(naf1[:l1])
	}
	if neg2 {
		negateDigits(naf2[:l2])
	}

	maxLen := l1
	if l2 > maxLen {
		maxLen = l2
	}

	var acc G1Jac
	acc.Set(&curve.g1Infinity)
	for i := maxLen - 1; i >= 0; i-- {
		if i < l1 {
			acc.nafAdd(curve, t1Aff, naf1[i])
		}
		if i < l2 {
			acc.nafAdd(curve, t2Aff, naf2[i])
		}
		if i != 0 {
			acc.DoubleAssign(curve)
		}
	}

	return p.Set(&acc)
}

// ScalarMulGen sets p = [s]G where G generates the r-torsion, and returns p
func (p *G1Jac) ScalarMulGen(curve *Curve, s *fr.Element) *G1Jac {
	return p.ScalarMul(curve, &curve.g1Gen, s)
}

// ClearCofactor maps a point of E(𝔽p) into the prime order r-torsion
func (p *G1Jac) ClearCofactor(curve *Curve, a *G1Jac) *G1Jac {
	return p.mulBigInt(curve, a, &curve.cofactor)
}

// nafAdd mixed-adds the table entry selected by one signed wNAF digit
func (p *G1Jac) nafAdd(curve *Curve, table []G1Affine, digit int8) {
	if digit == 0 {
		return
	}
	idx := digit
	if idx < 0 {
		idx = -idx
	}
	entry := table[idx>>1]
	if digit < 0 {
		entry.Neg(&entry)
	}
	p.AddMixed(curve, &entry)
}

// phi applies the GLV endomorphism φ(x, y) = (thirdRootOne·x, y)
func (curve *Curve) phi(res, a *G1Affine) *G1Affine {
	res.Y = a.Y
	res.X.Mul(&a.X, &curve.thirdRootOne)
	return res
}

// decomposeScalar splits s into sign1·|k1| + sign2·|k2|·λ (mod r) with both
// halves of roughly half the bit length of r
func (curve *Curve) decomposeScalar(s *fr.Element) (k1, k2 big.Int, neg1, neg2 bool) {
	var sBig big.Int
	s.BigInt(&sBig)
	k := gecc.SplitScalar(&sBig, &curve.glvBasis)
	k1.Set(&k[0])
	k2.Set(&k[1])
	if k1.Sign() == -1 {
		k1.Neg(&k1)
		neg1 = true
	}
	if k2.Sign() == -1 {
		k2.Neg(&k2)
		neg2 = true
	}
	return
}

// mulBigInt sets p = [s]a by plain double-and-add; s must be non-negative.
// It is the reference ladder for cofactor clearing and correctness checks,
// not a hot path.
func (p *G1Jac) mulBigInt(curve *Curve, a *G1Jac, s *big.Int) *G1Jac {
	var res G1Jac
	res.Set(&curve.g1Infinity)
	for i := s.BitLen() - 1; i >= 0; i-- {
		res.DoubleAssign(curve)
		if s.Bit(i) == 1 {
			res.AddAssign(curve, a)
		}
	}
	return p.Set(&res)
}

func negateDigits(digits []int8) {
	for i := range digits {
		digits[i] = -digits[i]
	}
}
