// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: Verify checks that a .gr stream is already clean: symmetric,
//       one arc per direction, and a header arc count matching the body.

package dimacs

import (
	"fmt"
	"io"
)

// Report describes a stream accepted by Verify.
type Report struct {
	Nodes int64 // node count of the last header (0 if none)
	Arcs  int64 // arc lines read
	Pairs int   // distinct undirected pairs
}

// dirArc is an ordered (from, to) pair; unlike Key it is not canonicalized.
type dirArc struct{ from, to int64 }

type arcSeen struct {
	w    int64
	n    int
	line int
}

// Verify reads a .gr stream and checks it against the clean-graph contract.
//
// Rules:
//   - Each directed arc (u,v) appears once; a self-loop (u,u) appears exactly twice.
//   - For u != v, (v,u) exists with the same weight.
//   - If the last header carries an arc count, it equals the number of arc lines.
//
// Errors: *ParseError, or ErrDuplicateArc / ErrNotSymmetric / ErrArcCountMismatch
// wrapped with the offending arc and line.
func Verify(r io.Reader) (*Report, error) {
	var (
		rep    Report
		header = Header{Arcs: -1}
		order  []dirArc
		seen   = make(map[dirArc]*arcSeen)
	)

	err := scan(r, visitor{
		header: func(_ int, h Header) error {
			header = h

			return nil
		},
		arc: func(line int, a Arc) error {
			rep.Arcs++
			d := dirArc{from: a.U, to: a.V}
			s, ok := seen[d]
			if !ok {
				seen[d] = &arcSeen{w: a.W, n: 1, line: line}
				order = append(order, d)

				return nil
			}
			s.n++
			if a.U != a.V || s.n > 2 || s.w != a.W {
				return fmt.Errorf("%w: a %d %d (line %d, first at line %d)",
					ErrDuplicateArc, a.U, a.V, line, s.line)
			}

			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	pairs := make(map[Key]struct{}, len(order)/2+1)
	for _, d := range order {
		s := seen[d]
		if d.from == d.to {
			if s.n != 2 {
				return nil, fmt.Errorf("%w: self-loop a %d %d needs two lines (line %d)",
					ErrNotSymmetric, d.from, d.to, s.line)
			}
		} else {
			m, ok := seen[dirArc{from: d.to, to: d.from}]
			if !ok || m.w != s.w {
				return nil, fmt.Errorf("%w: a %d %d %d has no mirror (line %d)",
					ErrNotSymmetric, d.from, d.to, s.w, s.line)
			}
		}
		pairs[CanonicalKey(d.from, d.to)] = struct{}{}
	}

	if header.Arcs >= 0 && header.Arcs != rep.Arcs {
		return nil, fmt.Errorf("%w: header says %d, found %d",
			ErrArcCountMismatch, header.Arcs, rep.Arcs)
	}

	rep.Nodes = header.Nodes
	rep.Pairs = len(pairs)

	return &rep, nil
}
