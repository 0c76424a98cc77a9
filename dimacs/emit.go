// SPDX-License-Identifier: MIT
//
// File: emit.go
// Role: EmitSymmetric writes a Merged accumulator as a symmetric .gr stream.

package dimacs

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// ErrNilMerged indicates EmitSymmetric was called without an accumulator.
var ErrNilMerged = errors.New("dimacs: merged graph is nil")

// EmitSymmetric writes
//
//	p sp <nodes> <2·pairs>
//	a <low> <high> <w>
//	a <high> <low> <w>
//	...
//
// in first-seen key order. Nothing else is written; the sink is not closed.
//
// Complexity: O(P) time, O(1) extra memory beyond the write buffer.
func EmitSymmetric(w io.Writer, m *Merged) error {
	if m == nil {
		return ErrNilMerged
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = append(buf, markerHeader+" "+formatTag+" "...)
	buf = strconv.AppendInt(buf, m.Nodes, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, m.Arcs(), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	var werr error
	m.Each(func(k Key, weight int64) bool {
		buf = appendArc(buf[:0], k.Low, k.High, weight)
		buf = appendArc(buf, k.High, k.Low, weight)
		_, werr = bw.Write(buf)

		return werr == nil
	})
	if werr != nil {
		return werr
	}

	return bw.Flush()
}

// appendArc appends "a u v w\n" to buf.
func appendArc(buf []byte, u, v, w int64) []byte {
	buf = append(buf, markerArc...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, u, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, v, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, w, 10)

	return append(buf, '\n')
}
