// Loading star files: layout detection and block orchestration.
//
// Layout is decided by the first token of the first non-blank,
// non-comment line: data_optics means a modern two-block file,
// data_ a legacy single-block file, anything else is not a star file
// this package recognizes. Detection is a pass of its own; the load
// proper re-opens the file and reads its block or blocks in one
// continuous forward pass.
package star

import (
	"fmt"
	"strings"
)

type layout int

const (
	layoutLegacy layout = iota
	layoutModern
)

// Load reads a star file into MetaData. Files ending in .gz are
// decompressed transparently. The whole load either succeeds or fails
// fatally; no partial document is returned.
func Load(path string) (*MetaData, error) {
	lay, err := detect(path)
	if err != nil {
		return nil, err
	}

	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	lr := newLineReader(r)
	if lay == layoutModern {
		optics, err := readBlock(lr, BlockOptics)
		if err != nil {
			return nil, err
		}
		particles, err := readBlock(lr, BlockParticles)
		if err != nil {
			return nil, err
		}
		return &MetaData{Particles: particles, Optics: optics, Path: path}, nil
	}

	particles, err := readBlock(lr, BlockLegacy)
	if err != nil {
		return nil, err
	}
	return &MetaData{Particles: particles, Path: path}, nil
}

// detect classifies a file by its first meaningful line. The marker
// must match exactly: a file opening with, say, data_micrographs is
// not a particle star file and is rejected rather than misread.
func detect(path string) (layout, error) {
	r, err := open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	lr := newLineReader(r)
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		tok := fields[0]
		if strings.HasPrefix(tok, commentPrefix) {
			continue
		}
		switch tok {
		case BlockOptics:
			return layoutModern, nil
		case BlockLegacy:
			return layoutLegacy, nil
		}
		return 0, fmt.Errorf("%w: first block marker is %q (line %d)", ErrUnknownLayout, tok, lr.n)
	}
	if err := lr.err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%w: no block marker before end of file", ErrUnknownLayout)
}
