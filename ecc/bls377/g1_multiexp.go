package bls377

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/jovevkystax5a/snarkVM/internal/debug"
	"github.com/jovevkystax5a/snarkVM/utils/parallel"
)

// WindowedMultiExp sets p = scalars[0]*points[0] + ... + scalars[n-1]*points[n-1]
// assume: len(points) == len(scalars)
// algorithm: a special case of Pippenger described by Bootle:
// https://jbootle.github.io/Misc/pippenger.pdf
// uses all available runtime.NumCPU()
func (p *G1Jac) WindowedMultiExp(curve *Curve, points []G1Jac, scalars []fr.Element) *G1Jac {
	debug.Assert(len(points) == len(scalars))
	var lock sync.Mutex
	p.Set(&curve.g1Infinity)
	parallel.Execute(0, len(points), func(start, end int) {
		var t G1Jac
		t.multiExp(curve, points[start:end], scalars[start:end])
		lock.Lock()
		p.AddAssign(curve, &t)
		lock.Unlock()
	})
	return p
}

// multiExp set p = scalars[0]*points[0] + ... + scalars[n-1]*points[n-1]
// assume: len(points) == len(scalars) > 0
// algorithm: a special case of Pippenger described by Bootle:
// https://jbootle.github.io/Misc/pippenger.pdf
func (p *G1Jac) multiExp(curve *Curve, points []G1Jac, scalars []fr.Element) *G1Jac {
	const s = 4 // s from Bootle, we choose s divisible by the scalar bit length
	const b = s // b from Bootle, we choose b equal to s
	// WARNING! This code breaks if you switch to b != s
	// Because we chose b = s, each set S_i from Bootle is simply the set of
	// points[i]^{2^j} for each j in [0:s]
	// This choice allows for simpler code
	const TSize = (1 << b) - 1 // size of the T_i sets from Bootle
	// Store only one set T_i at a time
	var T [TSize]G1Jac // the set of [j]g for j in [1:2^b] for some choice of g
	computeT := func(T []G1Jac, t0 *G1Jac) {
		T[0].Set(t0)
		for j := 1; j < (1<<b)-1; j = j + 2 {
			T[j].Double(curve, &T[j/2])
			T[j+1].Set(&T[(j+1)/2])
			T[j+1].AddAssign(curve, &T[j/2])
		}
	}
	return p.pippenger(curve, points, scalars, s, b, T[:], computeT)
}

// algorithm: a special case of Pippenger described by Bootle:
// https://jbootle.github.io/Misc/pippenger.pdf
func (p *G1Jac) pippenger(curve *Curve, points []G1Jac, scalars []fr.Element, s, b uint64, T []G1Jac, computeT func(T []G1Jac, t0 *G1Jac)) *G1Jac {
	var t, selectorIndex, ks int
	var selectorMask, selectorShift, selector uint64

	t = fr.Limbs * 64 / int(s) // t from Bootle, equal to (scalar bit length) / s
	selectorMask = (1 << b) - 1
	morePoints := make([]G1Jac, t) // the set of G'_k points from Bootle
	for k := 0; k < t; k++ {
		morePoints[k].Set(&curve.g1Infinity)
	}
	for i := 0; i < len(points); i++ {
		// compute the set T_i from Bootle: all multiples [1:2^b] of points[i]
		computeT(T, &points[i])
		// for each morePoints: find the right T element and add it
		limbs := scalars[i].Bits() // regular (non-Montgomery) form
		for k := 0; k < t; k++ {
			ks = k * int(s)
			selectorIndex = ks / 64
			selectorShift = uint64(ks - (selectorIndex * 64))
			selector = (limbs[selectorIndex] & (selectorMask << selectorShift)) >> selectorShift
			if selector != 0 {
				morePoints[k].AddAssign(curve, &T[selector-1])
			}
		}
	}
	// combine morePoints to get the final result
	p.Set(&morePoints[t-1])
	for k := t - 2; k >= 0; k-- {
		for j := uint64(0); j < s; j++ {
			p.DoubleAssign(curve)
		}
		p.AddAssign(curve, &morePoints[k])
	}
	return p
}
