// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Arc/Key/Header records, sentinel errors and ParseError.

package dimacs

import (
	"errors"
	"fmt"
)

// Line markers recognized by the reader.
const (
	markerHeader  = "p"
	markerArc     = "a"
	formatTag     = "sp"
	headerNodeTok = 2 // index of the node count in a "p" line
	headerArcTok  = 3 // index of the optional arc count in a "p" line
	arcFields     = 4 // "a", u, v, w
)

// DefaultSuffix replaces the input extension when deriving an output path.
const DefaultSuffix = ".clean.gr"

// Sentinel errors for reading, cleaning and verifying .gr streams.
var (
	// ErrMalformedArc indicates an "a" line that is not exactly "a <int> <int> <int>".
	ErrMalformedArc = errors.New("dimacs: malformed arc line")

	// ErrMalformedHeader indicates a "p" line without a valid node count.
	ErrMalformedHeader = errors.New("dimacs: malformed problem line")

	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("dimacs: input file not found")

	// ErrNotSymmetric indicates an arc (u,v,w) whose mirror (v,u,w) is missing.
	ErrNotSymmetric = errors.New("dimacs: graph is not symmetric")

	// ErrDuplicateArc indicates the same directed arc appears more than once.
	ErrDuplicateArc = errors.New("dimacs: duplicate arc")

	// ErrArcCountMismatch indicates the header arc count disagrees with the arc lines.
	ErrArcCountMismatch = errors.New("dimacs: header arc count mismatch")
)

// ParseError reports a fatal problem on a specific input line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, without trailing newline
	Err  error  // ErrMalformedArc, ErrMalformedHeader, possibly joined with a strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Arc is a single directed "a u v w" record as read from the input.
type Arc struct {
	U, V int64
	W    int64
}

// Header is the content of a "p sp <nodes> [<arcs>]" line.
// Arcs is -1 when the line omits it.
type Header struct {
	Nodes int64
	Arcs  int64
}

// Key identifies an undirected edge: Low <= High always holds.
type Key struct {
	Low, High int64
}

// CanonicalKey orders the endpoints so (u,v) and (v,u) map to the same Key.
func CanonicalKey(u, v int64) Key {
	if v < u {
		return Key{Low: v, High: u}
	}

	return Key{Low: u, High: v}
}

// IsLoop reports whether the key is a self-loop.
func (k Key) IsLoop() bool { return k.Low == k.High }

// Stats summarizes one NormalizeAndMerge pass.
type Stats struct {
	Lines     int // total lines read
	Skipped   int // lines that were neither header nor arc
	Headers   int // "p" lines seen; the last one wins
	ArcsRead  int // "a" lines parsed
	Collapsed int // arcs folded into an already-present key
	Lowered   int // folds that lowered the stored weight
	SelfLoops int // arcs with u == v
}
