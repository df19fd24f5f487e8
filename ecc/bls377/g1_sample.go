package bls377

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
	"golang.org/x/crypto/blake2b"
)

// fromXCoordinate recovers the affine point with the given x coordinate, if
// one exists, picking the lexicographically largest y when greatest is set
func (curve *Curve) fromXCoordinate(res *G1Affine, x *fp.Element, greatest bool) bool {
	// y² = x³ + A·x + B
	var rhs, y fp.Element
	rhs.Square(x)
	rhs.Mul(&rhs, x)
	if !curve.aIsZero {
		var ax fp.Element
		curve.mulByA(&ax, x)
		rhs.Add(&rhs, &ax)
	}
	rhs.Add(&rhs, &curve.B)

	if y.Sqrt(&rhs) == nil {
		return false
	}
	if y.LexicographicallyLargest() != greatest {
		y.Neg(&y)
	}
	res.X = *x
	res.Y = y
	return true
}

// RandomG1 samples a uniformly random element of the prime order subgroup:
// rejection sampling over x coordinates, lifted through the cofactor
func RandomG1(curve *Curve) (G1Jac, error) {
	var p G1Jac
	for {
		var x fp.Element
		if _, err := x.SetRandom(); err != nil {
			return p, err
		}
		var sign [1]byte
		if _, err := rand.Read(sign[:]); err != nil {
			return p, err
		}

		var aff G1Affine
		if !curve.fromXCoordinate(&aff, &x, sign[0]&1 == 1) {
			continue
		}
		var q G1Jac
		q.FromAffine(&aff)
		p.ClearCofactor(curve, &q)
		// a point of order dividing the cofactor clears to infinity; resample
		if p.IsInfinity() {
			continue
		}
		return p, nil
	}
}

// HashToG1 deterministically maps msg to a point of the prime order subgroup,
// by try-and-increment over blake2b digests of (counter ‖ msg)
func HashToG1(curve *Curve, msg []byte) G1Affine {
	input := make([]byte, 8+len(msg))
	copy(input[8:], msg)

	for i := uint64(0); ; i++ {
		binary.LittleEndian.PutUint64(input[:8], i)
		digest := blake2b.Sum512(input)

		// 48 bytes for the candidate x (reduced mod p), one spare byte for
		// the sign of y
		var x fp.Element
		x.SetBytes(digest[:fp.Bytes])
		greatest := digest[fp.Bytes]&1 == 1

		var aff G1Affine
		if !curve.fromXCoordinate(&aff, &x, greatest) {
			continue
		}
		var q, r G1Jac
		q.FromAffine(&aff)
		r.ClearCofactor(curve, &q)
		if r.IsInfinity() {
			continue
		}
		aff.FromJacobian(&r)
		return aff
	}
}
