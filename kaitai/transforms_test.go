package kaitai

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripRight(t *testing.T) {
	require.Equal(t, []byte("foo"), StripRight([]byte("foo\x00\x00\x00"), 0))
	require.Equal(t, []byte{}, StripRight([]byte{0, 0, 0}, 0))
	require.Equal(t, []byte("abc"), StripRight([]byte("abc"), 0))
}

func TestTerminate(t *testing.T) {
	require.Equal(t, []byte("foo"), Terminate([]byte("foo\x00bar"), 0, false))
	require.Equal(t, []byte("foo\x00"), Terminate([]byte("foo\x00bar"), 0, true))
	// Unterminated input: returns the whole slice rather than indexing out
	// of range.
	require.Equal(t, []byte("nobody"), Terminate([]byte("nobody"), 0, true))
}

func TestProcessXorOne(t *testing.T) {
	require.Equal(t, []byte{0x0F, 0x0F}, ProcessXorOne([]byte{0xF0, 0xF0}, 0xFF))
}

func TestProcessXorMany(t *testing.T) {
	got := ProcessXorMany([]byte{1, 2, 3, 4, 5}, []byte{0xFF, 0x00})
	require.Equal(t, []byte{0xFE, 2, 0xFC, 4, 0xFA}, got)
}

func TestProcessRotateLeft(t *testing.T) {
	require.Equal(t, []byte{0b00000011}, ProcessRotateLeft([]byte{0b10000001}, 1))
	require.Equal(t, []byte{0xAB}, ProcessRotateLeft([]byte{0xAB}, 0))
}

func TestProcessZlib(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte("hello, kaitai"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := ProcessZlib(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []byte("hello, kaitai"), out)
}

func TestProcessZlibInvalid(t *testing.T) {
	_, err := ProcessZlib([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, KindIoError, kerr.Kind())
}
