package bls377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
	"github.com/jovevkystax5a/snarkVM/utils/parallel"
)

// below this size the conversion pass is not worth fanning out
const batchNormalizeParallelThreshold = 64

// BatchNormalize converts every point of v in place to an equivalent point
// with Z == 1 (points at infinity and already-normalized points are left
// alone), using a single field inversion regardless of len(v).
//
// Montgomery's Trick and Fast Implementation of Masked AES
// Genelle, Prouff and Quisquater
// Section 3.2
func BatchNormalize(v []G1Jac) {

	// first pass: compute the running products [z1, z1*z2, z1*z2*z3, ...]
	// of the non-normalized Z coordinates
	prod := make([]fp.Element, 0, len(v))
	var tmp fp.Element
	tmp.SetOne()
	for i := range v {
		if v[i].IsNormalized() {
			continue
		}
		tmp.Mul(&tmp, &v[i].Z)
		prod = append(prod, tmp)
	}
	if len(prod) == 0 {
		return
	}

	// a product of nonzero field elements cannot vanish; if it does, an
	// infinity point slipped through the filter
	if tmp.IsZero() {
		panic("bls377: batch normalization accumulated a zero product")
	}
	// the only inversion of the whole batch
	tmp.Inverse(&tmp)

	// second pass, backwards: recover 1/zᵢ as tmp * (product up to i-1) and
	// fold zᵢ back into tmp
	k := len(prod) - 1
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].IsNormalized() {
			continue
		}
		var next fp.Element
		next.Mul(&tmp, &v[i].Z)
		if k == 0 {
			v[i].Z = tmp
		} else {
			v[i].Z.Mul(&tmp, &prod[k-1])
		}
		tmp = next
		k--
	}

	// final pass: scale the coordinates. Z holds 1/z at this point. The loop
	// body is independent per point, so it fans out across CPUs above the
	// threshold; the two passes above stay sequential (running-product chain).
	convert := func(start, end int) {
		for i := start; i < end; i++ {
			if v[i].IsNormalized() {
				continue
			}
			var zz fp.Element
			zz.Square(&v[i].Z)
			v[i].X.Mul(&v[i].X, &zz)
			zz.Mul(&zz, &v[i].Z)
			v[i].Y.Mul(&v[i].Y, &zz)
			v[i].Z.SetOne()
		}
	}
	if len(v) < batchNormalizeParallelThreshold {
		convert(0, len(v))
	} else {
		parallel.Execute(0, len(v), convert)
	}
}

// BatchJacobianToAffine normalizes v in place and returns the affine
// projections, sharing the single inversion of BatchNormalize
func BatchJacobianToAffine(v []G1Jac) []G1Affine {
	BatchNormalize(v)
	res := make([]G1Affine, len(v))
	for i := range v {
		if v[i].IsInfinity() {
			continue
		}
		res[i].X = v[i].X
		res[i].Y = v[i].Y
	}
	return res
}
