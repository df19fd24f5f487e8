// Command bls377bench times the BLS12-377 G1 group operations and prints the
// results through the configured logger.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/jovevkystax5a/snarkVM/ecc/bls377"
	"github.com/jovevkystax5a/snarkVM/logger"
)

func main() {
	n := flag.Int("n", 512, "number of operations / points per benchmark")
	flag.Parse()

	log := logger.Logger()
	curve := bls377.BLS377()

	points := make([]bls377.G1Jac, *n)
	scalars := make([]fr.Element, *n)
	gen := curve.Generator()
	for i := range points {
		if _, err := scalars[i].SetRandom(); err != nil {
			log.Error().Err(err).Msg("sampling scalars")
			os.Exit(1)
		}
		points[i].ScalarMul(curve, &gen, &scalars[i])
	}

	start := time.Now()
	var p bls377.G1Jac
	for i := range scalars {
		p.ScalarMulGen(curve, &scalars[i])
	}
	log.Info().Int("n", *n).Dur("took", time.Since(start)).Msg("scalar multiplication")

	start = time.Now()
	bls377.BatchNormalize(points)
	log.Info().Int("n", *n).Dur("took", time.Since(start)).Msg("batch normalization")

	start = time.Now()
	p.WindowedMultiExp(curve, points, scalars)
	log.Info().Int("n", *n).Dur("took", time.Since(start)).Msg("windowed multi exp")
}
