package bls377

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
)

// SizeOfG1Jac is the byte size of a serialized Jacobian point:
// X ‖ Y ‖ Z, each coordinate in canonical little-endian form, no framing
const SizeOfG1Jac = 3 * fp.Bytes

// Bytes returns the fixed-layout serialization of p
func (p *G1Jac) Bytes() [SizeOfG1Jac]byte {
	var res [SizeOfG1Jac]byte
	putElementLE(res[0:fp.Bytes], &p.X)
	putElementLE(res[fp.Bytes:2*fp.Bytes], &p.Y)
	putElementLE(res[2*fp.Bytes:3*fp.Bytes], &p.Z)
	return res
}

// SetBytes deserializes p from buf. It errors if buf is short or if a
// coordinate is not a canonical field element.
func (p *G1Jac) SetBytes(buf []byte) error {
	if len(buf) < SizeOfG1Jac {
		return io.ErrShortBuffer
	}
	if err := setElementLE(&p.X, buf[0:fp.Bytes]); err != nil {
		return err
	}
	if err := setElementLE(&p.Y, buf[fp.Bytes:2*fp.Bytes]); err != nil {
		return err
	}
	return setElementLE(&p.Z, buf[2*fp.Bytes:3*fp.Bytes])
}

// WriteLE writes the serialization of p to w
func (p *G1Jac) WriteLE(w io.Writer) error {
	buf := p.Bytes()
	_, err := w.Write(buf[:])
	return err
}

// ReadLE reads a point from r into p
func (p *G1Jac) ReadLE(r io.Reader) error {
	var buf [SizeOfG1Jac]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	return p.SetBytes(buf[:])
}

// the field exposes big-endian regular-form bytes; the wire format is
// little-endian, so both helpers reverse

func putElementLE(buf []byte, e *fp.Element) {
	b := e.Bytes()
	for i := 0; i < fp.Bytes; i++ {
		buf[i] = b[fp.Bytes-1-i]
	}
}

func setElementLE(e *fp.Element, buf []byte) error {
	var b [fp.Bytes]byte
	for i := 0; i < fp.Bytes; i++ {
		b[i] = buf[fp.Bytes-1-i]
	}
	return e.SetBytesCanonical(b[:])
}
