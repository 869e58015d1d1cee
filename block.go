// Block codec: decoding one named data block from a line stream and
// encoding a Table back into the same textual shape.
//
// Decoding is forward-only and single-pass. The line that ends the
// header section is never pushed back — it becomes the first candidate
// row, exactly as the scan order of the format implies. Reading two
// blocks from one file means two readBlock calls against the same
// lineReader, the second resuming wherever the first left the cursor.
package star

import (
	"bufio"
	"fmt"
	"strings"
)

// Block markers used by the two layout generations, and the format's
// fixed structural tokens.
const (
	BlockOptics    = "data_optics"    // modern optics group block
	BlockParticles = "data_particles" // modern particle block
	BlockLegacy    = "data_"          // single block of legacy files

	loopMarker    = "loop_"
	labelPrefix   = "_"
	commentPrefix = "#"
)

// readBlock scans forward to the named block marker, then to the loop_
// marker, collects the run of _-prefixed column labels, and consumes
// rows until a blank line or end of stream. Every row must have
// exactly one field per label.
func readBlock(lr *lineReader, blockName string) (*Table, error) {
	found, err := seek(lr, blockName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, blockName)
	}
	found, err = seek(lr, loopMarker)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: block %q", ErrLoopNotFound, blockName)
	}

	// Column labels: one per line, first whitespace token only, so an
	// inline comment after the name is dropped. The first line that
	// does not start with the prefix ends the header and is kept as
	// the first candidate row.
	var columns []string
	var breaker string
	var haveBreaker bool
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, labelPrefix) {
			columns = append(columns, strings.Fields(line)[0])
			continue
		}
		breaker, haveBreaker = line, true
		break
	}
	if err := lr.err(); err != nil {
		return nil, err
	}

	// Body rows. A header followed directly by a blank line or end of
	// stream yields a valid zero-row table.
	var rows [][]string
	appendRow := func(line string) error {
		fields := strings.Fields(line)
		if len(fields) != len(columns) {
			return fmt.Errorf("%w: block %q row %d (line %d): %d fields, want %d",
				ErrColumnMismatch, blockName, len(rows), lr.n, len(fields), len(columns))
		}
		rows = append(rows, fields)
		return nil
	}
	if haveBreaker && strings.TrimSpace(breaker) != "" {
		if err := appendRow(breaker); err != nil {
			return nil, err
		}
		for {
			line, ok := lr.next()
			if !ok || strings.TrimSpace(line) == "" {
				break
			}
			if err := appendRow(line); err != nil {
				return nil, err
			}
		}
		if err := lr.err(); err != nil {
			return nil, err
		}
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// seek discards lines until one begins with the marker. found is false
// when the stream ends first.
func seek(lr *lineReader, marker string) (found bool, err error) {
	for {
		line, ok := lr.next()
		if !ok {
			return false, lr.err()
		}
		if strings.HasPrefix(line, marker) {
			return true, nil
		}
	}
}

// writeBlock emits one Table in block shape: the marker line, a blank
// line, loop_, one label per line, one space-joined line per row, then
// a trailing blank line. The output is exactly invertible by readBlock.
func writeBlock(w *bufio.Writer, blockName string, t *Table) error {
	w.WriteString(blockName)
	w.WriteString("\n\n")
	w.WriteString(loopMarker)
	w.WriteByte('\n')
	for _, col := range t.Columns {
		w.WriteString(col)
		w.WriteByte('\n')
	}
	for _, row := range t.Rows {
		w.WriteString(strings.Join(row, " "))
		w.WriteByte('\n')
	}
	w.WriteByte('\n')
	// bufio errors are sticky; flushing here surfaces a failure before
	// the next block starts.
	return w.Flush()
}
