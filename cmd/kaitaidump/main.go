// Command kaitaidump is a small diagnostic tool over the kaitai runtime: it
// opens a file, decodes a run of fixed-width integers from it, and prints
// them, exercising the stream and numeric-read paths end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kaitai-io/kaitai-struct-go-runtime/common"
	"github.com/kaitai-io/kaitai-struct-go-runtime/kaitai"
)

func main() {
	var (
		width   = flag.Int("width", 4, "integer width in bytes: 1, 2, 4, or 8")
		signed  = flag.Bool("signed", false, "decode as signed integers")
		le      = flag.Bool("le", false, "decode little-endian instead of big-endian")
		count   = flag.Int("count", 0, "number of values to print (0 = until EOF)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: kaitaidump [flags] <file>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *width, *signed, *le, *count); err != nil {
		fmt.Fprintln(os.Stderr, "kaitaidump:", err)
		os.Exit(1)
	}
}

func run(path string, width int, signed, littleEndian bool, count int) error {
	s, err := kaitai.OpenStream(path)
	if err != nil {
		return err
	}
	defer s.Close()

	common.Log.Debug("opened %s, size=%d, width=%d, signed=%v, le=%v", path, s.Size(), width, signed, littleEndian)

	n := 0
	for !s.IsEOF() {
		if count > 0 && n >= count {
			break
		}
		v, err := readOne(s, width, signed, littleEndian)
		if err != nil {
			return err
		}
		fmt.Println(v)
		n++
	}
	return nil
}

func readOne(s *kaitai.Stream, width int, signed, le bool) (any, error) {
	switch {
	case width == 1 && signed:
		v, err := s.ReadS1()
		return int64(v), err
	case width == 1:
		v, err := s.ReadU1()
		return int64(v), err
	case width == 2 && signed && le:
		v, err := s.ReadS2le()
		return int64(v), err
	case width == 2 && signed:
		v, err := s.ReadS2be()
		return int64(v), err
	case width == 2 && le:
		v, err := s.ReadU2le()
		return int64(v), err
	case width == 2:
		v, err := s.ReadU2be()
		return int64(v), err
	case width == 4 && signed && le:
		v, err := s.ReadS4le()
		return int64(v), err
	case width == 4 && signed:
		v, err := s.ReadS4be()
		return int64(v), err
	case width == 4 && le:
		v, err := s.ReadU4le()
		return int64(v), err
	case width == 4:
		v, err := s.ReadU4be()
		return int64(v), err
	case width == 8 && signed && le:
		return s.ReadS8le()
	case width == 8 && signed:
		return s.ReadS8be()
	case width == 8 && le:
		v, err := s.ReadU8le()
		return v, err
	case width == 8:
		v, err := s.ReadU8be()
		return v, err
	default:
		return 0, fmt.Errorf("unsupported width %d", width)
	}
}
