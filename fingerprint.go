// Content fingerprints for change detection.
//
// Two star files that differ only in their provenance comment carry
// identical metadata; fingerprints compare the parsed content
// directly. The digest covers column labels and row fields in order,
// with explicit field and row terminators so that ["ab","c"] and
// ["a","bc"] hash differently. Three algorithms are supported; xxHash3
// is the default.
package star

import (
	"fmt"
	"hash/fnv"
	"io"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Fingerprint returns a 16 hex character digest of the table contents.
// alg 0 selects AlgXXHash3.
func (t *Table) Fingerprint(alg int) (string, error) {
	return fingerprint(alg, t.digest)
}

// Fingerprint returns a 16 hex character digest covering the layout,
// the optics table when present, and the particle table. A legacy and
// a modern document never collide, even with identical particle rows.
func (m *MetaData) Fingerprint(alg int) (string, error) {
	return fingerprint(alg, func(w io.Writer) {
		if m.Optics != nil {
			io.WriteString(w, BlockOptics+"\n")
			m.Optics.digest(w)
			io.WriteString(w, BlockParticles+"\n")
		} else {
			io.WriteString(w, BlockLegacy+"\n")
		}
		m.Particles.digest(w)
	})
}

// digest streams the canonical byte form of the table: labels, a zero
// separator, then rows with unit separators between fields.
func (t *Table) digest(w io.Writer) {
	for _, col := range t.Columns {
		io.WriteString(w, col)
		w.Write([]byte{'\n'})
	}
	w.Write([]byte{0})
	for _, row := range t.Rows {
		for _, field := range row {
			io.WriteString(w, field)
			w.Write([]byte{0x1f})
		}
		w.Write([]byte{'\n'})
	}
}

// fingerprint feeds the canonical stream into the selected hash and
// formats the 64-bit digest as 16 hex characters.
func fingerprint(alg int, feed func(io.Writer)) (string, error) {
	switch alg {
	case 0, AlgXXHash3:
		h := xxh3.New()
		feed(h)
		return fmt.Sprintf("%016x", h.Sum64()), nil
	case AlgFNV1a:
		h := fnv.New64a()
		feed(h)
		return fmt.Sprintf("%016x", h.Sum64()), nil
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		feed(h)
		return fmt.Sprintf("%016x", h.Sum(nil)), nil
	default:
		return "", fmt.Errorf("unknown fingerprint algorithm %d", alg)
	}
}
