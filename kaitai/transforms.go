package kaitai

import (
	"bytes"
	"compress/zlib"
	"io"
)

// StripRight returns seq with the maximal suffix of bytes equal to pad
// trimmed off.
func StripRight(seq []byte, pad byte) []byte {
	newLen := len(seq)
	for newLen > 0 && seq[newLen-1] == pad {
		newLen--
	}
	out := make([]byte, newLen)
	copy(out, seq[:newLen])
	return out
}

// Terminate returns the prefix of seq up to the first occurrence of term,
// optionally including it. Unlike the reference implementation this checks
// the bounds before indexing (see SPEC_FULL.md §9 Design Notes — the
// original's bounds-after-content-check ordering is out-of-range on an
// unterminated input and is not replicated here).
func Terminate(seq []byte, term byte, includeTerm bool) []byte {
	newLen := 0
	for newLen < len(seq) && seq[newLen] != term {
		newLen++
	}
	if includeTerm && newLen < len(seq) {
		newLen++
	}
	out := make([]byte, newLen)
	copy(out, seq[:newLen])
	return out
}

// ProcessXorOne XORs every byte of seq with the scalar key k.
func ProcessXorOne(seq []byte, k byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = b ^ k
	}
	return out
}

// ProcessXorMany XORs seq with key, repeating key cyclically. key must be
// non-empty.
func ProcessXorMany(seq []byte, key []byte) []byte {
	out := make([]byte, len(seq))
	ki := 0
	for i, b := range seq {
		out[i] = b ^ key[ki]
		ki++
		if ki >= len(key) {
			ki = 0
		}
	}
	return out
}

// ProcessRotateLeft returns seq with every byte circularly left-rotated by
// amount bits, amount in [0,7]. amount=0 is the identity (see SPEC_FULL.md
// §9 Design Notes — an 8-bit shift is undefined on a byte, so 0 is treated
// as a no-op rather than attempted).
func ProcessRotateLeft(seq []byte, amount uint) []byte {
	out := make([]byte, len(seq))
	if amount == 0 {
		copy(out, seq)
		return out
	}
	for i, b := range seq {
		out[i] = b<<amount | b>>(8-amount)
	}
	return out
}

// ProcessZlib inflates a zlib-wrapped stream and returns the decompressed
// bytes.
func ProcessZlib(seq []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(seq))
	if err != nil {
		return nil, ErrIoError(err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrIoError(err)
	}
	return out, nil
}
