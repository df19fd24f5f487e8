package ecc

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWNafDecomposition(t *testing.T) {
	exp := big.NewInt(13)
	var result [400]int8
	lExp := WNafDecomposition(exp, 1, result[:])
	dec := result[:lExp]

	res := [5]int8{1, 0, -1, 0, 1}
	for i, v := range dec {
		if v != res[i] {
			t.Error("Error in WNafDecomposition")
		}
	}
}

func TestWNafProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("sum of wNAF digits reconstructs the input", prop.ForAll(
		func(a uint64, w uint8) bool {
			width := uint(w%6) + 1
			input := new(big.Int).SetUint64(a)
			var result [70]int8
			l := WNafDecomposition(input, width, result[:])

			sum := new(big.Int)
			coeff := new(big.Int)
			for i := 0; i < l; i++ {
				coeff.SetInt64(int64(result[i]))
				coeff.Lsh(coeff, uint(i))
				sum.Add(sum, coeff)
			}
			return sum.Cmp(input) == 0
		},
		gen.UInt64(),
		gen.UInt8(),
	))

	properties.Property("wNAF digits are zero or odd and bounded by the window", prop.ForAll(
		func(a uint64, w uint8) bool {
			width := uint(w%6) + 1
			input := new(big.Int).SetUint64(a)
			var result [70]int8
			l := WNafDecomposition(input, width, result[:])

			bound := int8(1) << width
			for i := 0; i < l; i++ {
				d := result[i]
				if d == 0 {
					continue
				}
				if d%2 == 0 {
					return false
				}
				if d >= bound || d <= -bound {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
