package kaitai

import (
	"io"
	"os"
)

// source is the shared, seekable byte source backing a Stream and every
// clone made from it. Reads go through ReadAt (pread semantics) rather than
// Read+Seek, so concurrent clones never contend over — or need to
// resynchronize — a native cursor: ReadAt is positional by definition. See
// SPEC_FULL.md §5 for why this replaces the original's seek-before-every-read
// discipline.
type source interface {
	io.ReaderAt
	Size() int64
}

type memSource []byte

func (s memSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s)) {
		return 0, io.EOF
	}
	n := copy(p, s[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (s memSource) Size() int64 { return int64(len(s)) }

type fileSource struct {
	f    *os.File
	size int64
}

func (s *fileSource) ReadAt(p []byte, off int64) (int, error) { return s.f.ReadAt(p, off) }
func (s *fileSource) Size() int64                             { return s.size }
func (s *fileSource) Close() error                            { return s.f.Close() }

// Stream is a position-addressable reader over a fixed-size byte source,
// supporting both byte-aligned and bit-packed reads with correct residual
// accounting between the two modes (§4.1/§4.1.1/§4.5). The zero value is not
// usable; construct with NewStream or OpenStream.
type Stream struct {
	src source

	pos      int64
	bits     uint64
	bitsLeft int
}

// NewStream returns a Stream reading from an in-memory byte slice. The slice
// is not copied; callers must not mutate it while the stream (or any clone
// of it) is in use.
func NewStream(data []byte) *Stream {
	return &Stream{src: memSource(data)}
}

// OpenStream opens path and returns a Stream reading from it. The file is
// kept open for the lifetime of the stream and every clone made from it;
// call Close when done.
func OpenStream(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrIoError(err)
	}
	return newFileStream(f)
}

// NewStreamFromFile returns a Stream reading from an already-open file
// handle. The Stream takes ownership of f for the purposes of Close.
func NewStreamFromFile(f *os.File) (*Stream, error) {
	return newFileStream(f)
}

func newFileStream(f *os.File) (*Stream, error) {
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ErrIoError(err)
	}
	return &Stream{src: &fileSource{f: f, size: fi.Size()}}, nil
}

// Close releases any OS resources (an open file handle) backing the stream.
// It is a no-op for in-memory streams. Safe to call on any clone; closes the
// handle shared by every clone of the same root stream.
func (s *Stream) Close() error {
	if fs, ok := s.src.(*fileSource); ok {
		return fs.Close()
	}
	return nil
}

// Clone returns a new Stream sharing the same underlying source but with an
// independent cursor reset to the start (pos=0, no residual bits), per §5.
func (s *Stream) Clone() *Stream {
	return &Stream{src: s.src}
}

// Size returns the total number of bytes in the underlying source.
func (s *Stream) Size() int64 { return s.src.Size() }

// Pos returns the current byte cursor.
func (s *Stream) Pos() int64 { return s.pos }

// IsEOF reports whether the cursor is at the end of the source with no
// residual bits buffered.
func (s *Stream) IsEOF() bool {
	return s.bitsLeft == 0 && s.pos == s.Size()
}

// Seek sets the byte cursor to p. It does not touch the bit buffer — callers
// intending to discard residual bits must call AlignToByte themselves
// (§4.5's "Any → Aligned" note). Fails with KindIncomplete if p exceeds the
// source size, leaving pos unchanged.
func (s *Stream) Seek(p int64) error {
	if p > s.Size() {
		return ErrIncomplete(p - s.pos)
	}
	s.pos = p
	return nil
}

// AlignToByte discards any residual bits, transitioning to the Aligned
// state (§4.5).
func (s *Stream) AlignToByte() {
	s.bits = 0
	s.bitsLeft = 0
}

// BitsLeft returns the number of residual bits currently buffered (0-7).
func (s *Stream) BitsLeft() int { return s.bitsLeft }

// ReadBytes reads exactly n bytes starting at pos and advances pos by n. It
// does not require or enforce byte alignment of the bit buffer — it reads
// raw bytes at the current pos regardless of residual bits. Fails with
// KindIncomplete, leaving pos unchanged, if fewer than n bytes remain.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	need := int64(n)
	if s.pos+need > s.Size() {
		return nil, ErrIncomplete(s.pos + need - s.Size())
	}
	buf := make([]byte, n)
	read, err := s.src.ReadAt(buf, s.pos)
	if err != nil && err != io.EOF {
		return nil, ErrIoError(err)
	}
	if read < n {
		return nil, ErrIncomplete(int64(n - read))
	}
	s.pos += need
	return buf, nil
}

// ReadBytesFull reads from pos to the end of the source and advances pos to
// size.
func (s *Stream) ReadBytesFull() ([]byte, error) {
	remaining := s.Size() - s.pos
	if remaining <= 0 {
		s.pos = s.Size()
		return []byte{}, nil
	}
	buf := make([]byte, remaining)
	read, err := s.src.ReadAt(buf, s.pos)
	if err != nil && err != io.EOF {
		return nil, ErrIoError(err)
	}
	s.pos = s.Size()
	return buf[:read], nil
}

// ReadBytesTerm scans forward byte by byte until term is found or EOF is
// reached.
//
// On finding term: include governs whether the terminator is appended to
// the returned slice; consume governs whether pos advances past the
// terminator (if false, pos rests on it).
//
// On reaching EOF first: if eosError, fails with KindEncounteredEOF;
// otherwise returns what was collected with pos == Size().
func (s *Stream) ReadBytesTerm(term byte, include, consume, eosError bool) ([]byte, error) {
	var out []byte
	for s.pos < s.Size() {
		b, err := s.ReadBytes(1)
		if err != nil {
			return nil, err
		}
		if b[0] != term {
			out = append(out, b[0])
			continue
		}
		// Undo the byte we just consumed so pos rests on the terminator
		// until the consume flag says otherwise.
		s.pos--
		break
	}

	if s.pos == s.Size() {
		if eosError {
			return nil, ErrEncounteredEOF()
		}
		if out == nil {
			out = []byte{}
		}
		return out, nil
	}

	if consume {
		s.pos++
	}
	if include {
		out = append(out, term)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}
