// Writing star files.
//
// Write always rewrites the whole file: one provenance comment line, a
// blank line, then the optics and particle blocks (modern layout) or
// the single legacy block. There is no append mode and no partial
// update. The output directory is created when absent; an existing
// directory is not an error.
package star

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Extension is the conventional star file suffix, appended to the
// rootname on write.
const Extension = ".star"

// defaultComment is the provenance text used when WriteOptions leaves
// Comment empty.
const defaultComment = "Created by relion-star-handler"

// WriteOptions adjusts how a file is emitted. The zero value writes an
// uncompressed file with the default provenance comment.
type WriteOptions struct {
	Comment string // provenance text; the timestamp is always appended
	Gzip    bool   // emit <rootname>.star.gz instead of <rootname>.star
}

// Write saves the metadata as <outdir>/<rootname>.star with default
// options, creating outdir if needed.
func (m *MetaData) Write(outdir, rootname string) error {
	return m.WriteWith(outdir, rootname, WriteOptions{})
}

// WriteWith saves the metadata using the given options. The target
// file is truncated if it exists.
func (m *MetaData) WriteWith(outdir, rootname string, opts WriteOptions) error {
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return err
	}

	name := rootname + Extension
	if opts.Gzip {
		name += ".gz"
	}
	f, err := os.Create(filepath.Join(outdir, name))
	if err != nil {
		return err
	}

	if err := m.emit(f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// emit writes the provenance comment and block sequence to w, wrapping
// the stream in gzip when requested.
func (m *MetaData) emit(w io.Writer, opts WriteOptions) error {
	var zw *gzip.Writer
	if opts.Gzip {
		zw = gzip.NewWriter(w)
		w = zw
	}
	bw := bufio.NewWriter(w)

	comment := opts.Comment
	if comment == "" {
		comment = defaultComment
	}
	fmt.Fprintf(bw, "%s %s at %s\n\n", commentPrefix, comment, time.Now().Format(time.RFC3339))

	if m.Optics != nil {
		if err := writeBlock(bw, BlockOptics, m.Optics); err != nil {
			return err
		}
		if err := writeBlock(bw, BlockParticles, m.Particles); err != nil {
			return err
		}
	} else if err := writeBlock(bw, BlockLegacy, m.Particles); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	if zw != nil {
		return zw.Close()
	}
	return nil
}
