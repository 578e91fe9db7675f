package kaitai

import (
	"encoding/binary"
	"math"
)

// ReadS1 reads a signed 8-bit integer.
func (s *Stream) ReadS1() (int8, error) {
	b, err := s.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadU1 reads an unsigned 8-bit integer.
func (s *Stream) ReadU1() (uint8, error) {
	b, err := s.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadS2be reads a big-endian signed 16-bit integer.
func (s *Stream) ReadS2be() (int16, error) {
	v, err := s.ReadU2be()
	return int16(v), err
}

// ReadS2le reads a little-endian signed 16-bit integer.
func (s *Stream) ReadS2le() (int16, error) {
	v, err := s.ReadU2le()
	return int16(v), err
}

// ReadS4be reads a big-endian signed 32-bit integer.
func (s *Stream) ReadS4be() (int32, error) {
	v, err := s.ReadU4be()
	return int32(v), err
}

// ReadS4le reads a little-endian signed 32-bit integer.
func (s *Stream) ReadS4le() (int32, error) {
	v, err := s.ReadU4le()
	return int32(v), err
}

// ReadS8be reads a big-endian signed 64-bit integer.
func (s *Stream) ReadS8be() (int64, error) {
	v, err := s.ReadU8be()
	return int64(v), err
}

// ReadS8le reads a little-endian signed 64-bit integer.
func (s *Stream) ReadS8le() (int64, error) {
	v, err := s.ReadU8le()
	return int64(v), err
}

// ReadU2be reads a big-endian unsigned 16-bit integer.
func (s *Stream) ReadU2be() (uint16, error) {
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU2le reads a little-endian unsigned 16-bit integer.
func (s *Stream) ReadU2le() (uint16, error) {
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU4be reads a big-endian unsigned 32-bit integer.
func (s *Stream) ReadU4be() (uint32, error) {
	b, err := s.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU4le reads a little-endian unsigned 32-bit integer.
func (s *Stream) ReadU4le() (uint32, error) {
	b, err := s.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU8be reads a big-endian unsigned 64-bit integer.
func (s *Stream) ReadU8be() (uint64, error) {
	b, err := s.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadU8le reads a little-endian unsigned 64-bit integer.
func (s *Stream) ReadU8le() (uint64, error) {
	b, err := s.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadF4be reads a big-endian IEEE-754 single-precision float.
func (s *Stream) ReadF4be() (float32, error) {
	v, err := s.ReadU4be()
	return math.Float32frombits(v), err
}

// ReadF4le reads a little-endian IEEE-754 single-precision float.
func (s *Stream) ReadF4le() (float32, error) {
	v, err := s.ReadU4le()
	return math.Float32frombits(v), err
}

// ReadF8be reads a big-endian IEEE-754 double-precision float.
func (s *Stream) ReadF8be() (float64, error) {
	v, err := s.ReadU8be()
	return math.Float64frombits(v), err
}

// ReadF8le reads a little-endian IEEE-754 double-precision float.
func (s *Stream) ReadF8le() (float64, error) {
	v, err := s.ReadU8le()
	return math.Float64frombits(v), err
}
