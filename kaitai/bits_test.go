package kaitai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBitsIntBESingleBit(t *testing.T) {
	s := NewStream([]byte{0b10000000})
	v, err := s.ReadBitsIntBE(1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
	require.Equal(t, 7, s.BitsLeft())
}

func TestReadBitsIntBEThreeBits(t *testing.T) {
	s := NewStream([]byte{0b10100000})
	v, err := s.ReadBitsIntBE(3)
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 5, s.BitsLeft())
}

func TestReadBitsIntBESpansBytes(t *testing.T) {
	s := NewStream([]byte{0x01, 0x80})
	v, err := s.ReadBitsIntBE(9)
	require.NoError(t, err)
	require.Equal(t, uint64(3), v)
	require.Equal(t, 7, s.BitsLeft())
}

func TestReadBitsIntBEZero(t *testing.T) {
	s := NewStream([]byte{0xFF})
	v, err := s.ReadBitsIntBE(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
	require.Equal(t, int64(0), s.Pos())
}

func TestReadBitsIntBETooLarge(t *testing.T) {
	s := NewStream([]byte{0xFF})
	_, err := s.ReadBitsIntBE(65)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindReadBitsTooLarge, kerr.Kind())
	require.Equal(t, 65, kerr.Requested())
}

func TestReadBitsIntBEFull64(t *testing.T) {
	s := NewStream([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	v, err := s.ReadBitsIntBE(64)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), v)
}

func TestReadBitsIntLEThreeBits(t *testing.T) {
	s := NewStream([]byte{0b00000101})
	v, err := s.ReadBitsIntLE(3)
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 5, s.BitsLeft())
}

func TestReadBitsIntLESpansBytes(t *testing.T) {
	s := NewStream([]byte{0x80, 0x01})
	// LE consumes the low byte's bits first: 0x80 contributes bits 0-7, and
	// the second byte's LSB contributes bit 8, giving 0x80 | (1<<8) = 0x180.
	v, err := s.ReadBitsIntLE(9)
	require.NoError(t, err)
	require.Equal(t, uint64(0x180), v)
}

func TestReadBitsIntMixedWithByteRead(t *testing.T) {
	// After consuming 3 bits, 5 residual bits remain; AlignToByte discards
	// them so a subsequent byte read starts at the next whole byte.
	s := NewStream([]byte{0b10100000, 0xAB})
	_, err := s.ReadBitsIntBE(3)
	require.NoError(t, err)
	s.AlignToByte()
	b, err := s.ReadU1()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), b)
}

func BenchmarkReadBitsIntBE(b *testing.B) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewStream(data)
		for !s.IsEOF() || s.BitsLeft() > 0 {
			if _, err := s.ReadBitsIntBE(3); err != nil {
				break
			}
		}
	}
}
