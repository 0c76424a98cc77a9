// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: line-oriented scanning and record parsing shared by merge and verify.
// Policy:
//   - Lines are classified by their first whitespace-separated token.
//   - Any malformed "p" or "a" line aborts the scan with *ParseError.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line; real .gr lines are a few dozen bytes.
const maxLineBytes = 1 << 20

// visitor receives parsed records in input order. Returning an error stops the scan.
type visitor struct {
	header func(line int, h Header) error
	arc    func(line int, a Arc) error
	other  func(line int)
}

// scan streams r line by line and dispatches each record to v.
func scan(r io.Reader, v visitor) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		fields := strings.Fields(text)

		switch {
		case len(fields) > 0 && fields[0] == markerArc:
			a, err := parseArc(fields)
			if err != nil {
				return &ParseError{Line: lineNo, Text: text, Err: err}
			}
			if v.arc != nil {
				if err = v.arc(lineNo, a); err != nil {
					return err
				}
			}
		case len(fields) > 0 && fields[0] == markerHeader:
			h, err := parseHeader(fields)
			if err != nil {
				return &ParseError{Line: lineNo, Text: text, Err: err}
			}
			if v.header != nil {
				if err = v.header(lineNo, h); err != nil {
					return err
				}
			}
		default:
			if v.other != nil {
				v.other(lineNo)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dimacs: read after line %d: %w", lineNo, err)
	}

	return nil
}

// parseArc decodes ["a", u, v, w].
func parseArc(fields []string) (Arc, error) {
	if len(fields) != arcFields {
		return Arc{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedArc, len(fields)-1)
	}

	var vals [arcFields - 1]int64
	for i := range vals {
		n, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return Arc{}, fmt.Errorf("%w: field %d: %w", ErrMalformedArc, i+1, err)
		}
		vals[i] = n
	}

	return Arc{U: vals[0], V: vals[1], W: vals[2]}, nil
}

// parseHeader decodes ["p", tag, nodes, (arcs)]. The tag is not checked.
// An absent or non-numeric arc count yields Arcs == -1.
func parseHeader(fields []string) (Header, error) {
	if len(fields) <= headerNodeTok {
		return Header{}, fmt.Errorf("%w: missing node count", ErrMalformedHeader)
	}
	nodes, err := strconv.ParseInt(fields[headerNodeTok], 10, 64)
	if err != nil {
		return Header{}, fmt.Errorf("%w: node count: %w", ErrMalformedHeader, err)
	}
	if nodes < 0 {
		return Header{}, fmt.Errorf("%w: negative node count %d", ErrMalformedHeader, nodes)
	}

	h := Header{Nodes: nodes, Arcs: -1}
	if len(fields) > headerArcTok {
		if arcs, aerr := strconv.ParseInt(fields[headerArcTok], 10, 64); aerr == nil {
			h.Arcs = arcs
		}
	}

	return h, nil
}
