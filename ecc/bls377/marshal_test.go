package bls377

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestG1JacSerializationRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10
	properties := gopter.NewProperties(parameters)

	properties.Property("Bytes followed by SetBytes is the identity", prop.ForAll(
		func(p G1Jac) bool {
			buf := p.Bytes()
			var q G1Jac
			if err := q.SetBytes(buf[:]); err != nil {
				return false
			}
			// representative-exact, not just projectively equal
			return q.X.Equal(&p.X) && q.Y.Equal(&p.Y) && q.Z.Equal(&p.Z)
		},
		genG1Jac(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestG1JacSerializationInfinity(t *testing.T) {
	curve := BLS377()

	inf := curve.Infinity()
	buf := inf.Bytes()

	var q G1Jac
	require.NoError(t, q.SetBytes(buf[:]))
	require.True(t, q.IsInfinity())
	require.True(t, q.Y.IsOne())
}

func TestG1JacSerializationLayout(t *testing.T) {
	curve := BLS377()

	// the generator is normalized, so the trailing Z block must decode to one
	g := curve.Generator()
	buf := g.Bytes()
	require.Len(t, buf[:], SizeOfG1Jac)

	var z G1Jac
	require.NoError(t, z.SetBytes(buf[:]))
	require.True(t, z.Z.IsOne())

	// little-endian: Z == 1 serializes as 0x01 followed by zeroes
	zBlock := buf[2*fp.Bytes:]
	require.Equal(t, byte(1), zBlock[0])
	for _, b := range zBlock[1:] {
		require.Equal(t, byte(0), b)
	}
}

func TestG1JacSetBytesErrors(t *testing.T) {
	curve := BLS377()

	var p G1Jac

	// short input
	short := make([]byte, SizeOfG1Jac-1)
	require.Error(t, p.SetBytes(short))

	// a coordinate above the field modulus is rejected
	bad := make([]byte, SizeOfG1Jac)
	for i := range bad {
		bad[i] = 0xFF
	}
	require.Error(t, p.SetBytes(bad))

	// the surviving point is not silently half-written garbage on the happy path
	g := curve.Generator()
	buf := g.Bytes()
	require.NoError(t, p.SetBytes(buf[:]))
	require.True(t, p.Equal(&g))
}

func TestG1JacReadWriteLE(t *testing.T) {
	curve := BLS377()

	var buf bytes.Buffer
	points := make([]G1Jac, 5)
	for i := range points {
		p, err := RandomG1(curve)
		require.NoError(t, err)
		points[i].Set(&p)
		require.NoError(t, points[i].WriteLE(&buf))
	}

	for i := range points {
		var q G1Jac
		require.NoError(t, q.ReadLE(&buf))
		require.True(t, q.Equal(&points[i]))
	}

	// drained stream
	var q G1Jac
	require.Error(t, q.ReadLE(&buf))

	// truncated stream
	p := curve.Generator()
	require.NoError(t, p.WriteLE(&buf))
	buf.Truncate(buf.Len() - 1)
	require.Error(t, q.ReadLE(&buf))
}
