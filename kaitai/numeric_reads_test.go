package kaitai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadIntegers(t *testing.T) {
	s := NewStream([]byte{0x00, 0x01, 0xFF, 0xFF, 0xFF, 0xFE, 0x00, 0x00, 0x00, 0x02})

	u1, err := s.ReadU1()
	require.NoError(t, err)
	require.Equal(t, uint8(0x00), u1)

	u1b, err := s.ReadU1()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), u1b)

	s4, err := s.ReadS4be()
	require.NoError(t, err)
	require.Equal(t, int32(-2), s4)

	u4, err := s.ReadU4be()
	require.NoError(t, err)
	require.Equal(t, uint32(2), u4)
}

func TestReadIntegersLittleEndian(t *testing.T) {
	s := NewStream([]byte{0x02, 0x00, 0x00, 0x00})
	v, err := s.ReadU4le()
	require.NoError(t, err)
	require.Equal(t, uint32(2), v)
}

func TestReadFloats(t *testing.T) {
	// IEEE-754 representation of 1.0 as a big-endian f4.
	s := NewStream([]byte{0x3F, 0x80, 0x00, 0x00})
	v, err := s.ReadF4be()
	require.NoError(t, err)
	require.Equal(t, float32(1.0), v)
}

func TestReadS8Negative(t *testing.T) {
	s := NewStream([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	v, err := s.ReadS8be()
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}
