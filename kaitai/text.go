package kaitai

import (
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/rivo/uniseg"
)

// DecodeString decodes bytes as the named character encoding and returns the
// resulting Go string (always valid UTF-8). label is resolved against the
// WHATWG Encoding Standard's label list (e.g. "UTF-8", "SHIFT_JIS", "ASCII",
// "windows-1252"); "UTF-8" (also "UTF8") is handled directly, while "ASCII"
// goes through the WHATWG index, which aliases it to windows-1252. "IBM437"/"CP437" is resolved
// via a hand-built table, since the legacy PC codepage is not part of the
// WHATWG standard and golang.org/x/text carries no table for it. Decoding
// never fails on malformed input for a recognized label — malformed byte
// sequences are replaced with U+FFFD, matching the original's
// DecoderTrap::Replace behavior; only an unrecognized label is an error.
func DecodeString(b []byte, label string) (string, error) {
	switch normalizeLabel(label) {
	case "utf-8", "utf8":
		return strings.ToValidUTF8(string(b), "�"), nil
	case "ibm437", "cp437":
		return decodeCP437(b), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", ErrEncoding("unknown character encoding: " + label)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", ErrEncoding("decoding as " + label + ": " + err.Error())
	}
	return string(out), nil
}

func normalizeLabel(label string) string {
	out := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// ReverseString reverses s by Unicode grapheme cluster (UAX #29) rather than
// by byte or by code point, so combining marks and multi-rune clusters stay
// attached to their base character.
func ReverseString(s string) string {
	gr := uniseg.NewGraphemes(s)
	var clusters []string
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	out := make([]byte, 0, len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		out = append(out, clusters[i]...)
	}
	return string(out)
}
