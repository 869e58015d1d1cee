// Line-oriented input with a single owned read cursor.
//
// A modern-layout file is decoded with two consecutive block reads in
// one continuous forward pass, so the read position must survive
// across calls. lineReader owns that position; the block codec itself
// keeps no state between calls. Files named *.gz are decompressed
// transparently on open.
package star

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLineSize bounds a single line. Particle rows are a few hundred
// bytes in practice; 1MB leaves generous headroom.
const maxLineSize = 1 << 20

// lineReader yields lines one at a time and tracks the 1-based number
// of the last line returned, for error context.
type lineReader struct {
	scanner *bufio.Scanner
	n       int
}

func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{scanner: s}
}

// next returns the next line without its newline. ok is false at end
// of stream or on a read error; err distinguishes the two.
func (lr *lineReader) next() (line string, ok bool) {
	if !lr.scanner.Scan() {
		return "", false
	}
	lr.n++
	return lr.scanner.Text(), true
}

// err reports the read error that ended the stream, if any.
func (lr *lineReader) err() error {
	return lr.scanner.Err()
}

// open opens a star file for reading, wrapping gzip-compressed files
// by filename suffix.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipFile{zr: zr, f: f}, nil
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipFile) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
