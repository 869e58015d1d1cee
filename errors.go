// Package star reads and writes RELION particle metadata in the STAR
// text format. A star file holds one or more named data blocks, each a
// loop_ header of column labels followed by whitespace-delimited rows.
//
// Two layout generations exist. RELION 2.x/3.0 files carry a single
// data_ block; RELION 3.1 files carry a data_optics block followed by
// a data_particles block. Load detects the layout from the first
// meaningful line and exposes both generations through one MetaData
// type, which Write re-emits in the same convention.
//
// Field values are kept as raw strings throughout. The format mixes
// floats, ints, and enumerated codes, and this package never needs to
// interpret them — only the arity invariant (every row has exactly one
// field per column label) is enforced.
package star

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is
// to tell structural corruption (ErrBlockNotFound, ErrLoopNotFound,
// ErrColumnMismatch, ErrUnknownLayout) from caller mistakes
// (ErrIndexRange). All are fatal for the operation that returns them —
// no partial MetaData and no partial file is ever produced.
var (
	ErrBlockNotFound  = errors.New("data block not found")
	ErrLoopNotFound   = errors.New("loop marker not found")
	ErrColumnMismatch = errors.New("column count mismatch")
	ErrUnknownLayout  = errors.New("unrecognized star layout")
	ErrIndexRange     = errors.New("row index out of range")
)
