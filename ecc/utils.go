// Package ecc provides scalar recoding utilities shared by the curve packages.
package ecc

import (
	"math/big"
)

var (
	zero, one big.Int
)

func init() {
	one.SetUint64(1)
}

// WNafDecomposition gets the width-w NAF decomposition of a big number.
//
// Digits are written to result least significant first; each digit is either
// zero or odd, in (-2^w, 2^w). Returns the number of digits written.
// w must be at most 6 so that every digit fits an int8.
func WNafDecomposition(a *big.Int, w uint, result []int8) int {

	tableSize := int64(1) << (w + 1)
	halfTable := int64(1) << w
	mask := big.NewInt(tableSize - 1)

	length := 0

	// some buffers
	var buf, aCopy big.Int
	aCopy.Set(a)

	for aCopy.Cmp(&zero) != 0 {

		// if aCopy % 2 == 0
		buf.And(&aCopy, &one)

		// aCopy even
		if buf.Cmp(&zero) == 0 {
			result[length] = 0
		} else { // aCopy odd
			// signed residue of aCopy modulo 2^(w+1)
			d := buf.And(&aCopy, mask).Int64()
			if d >= halfTable {
				d -= tableSize
			}
			result[length] = int8(d)

			// clear the low bits so the next w digits come out zero
			if d < 0 {
				aCopy.Add(&aCopy, buf.SetInt64(-d))
			} else {
				aCopy.Sub(&aCopy, buf.SetInt64(d))
			}
		}
		aCopy.Rsh(&aCopy, 1)
		length++
	}
	return length
}
