// SPDX-License-Identifier: MIT
// Package dimacs_test verifies canonicalization and MIN merging.

package dimacs_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/grclean/dimacs"
)

// MergeSuite exercises NormalizeAndMerge on small hand-written graphs.
type MergeSuite struct {
	suite.Suite
}

func merge(s *MergeSuite, input string) *dimacs.Merged {
	m, err := dimacs.NormalizeAndMerge(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.NotNil(s.T(), m)

	return m
}

// TestMinWeight checks that all orientations of a pair collapse to the minimum.
func (s *MergeSuite) TestMinWeight() {
	m := merge(s, "a 1 2 5\na 2 1 3\na 1 2 9\n")

	require.Equal(s.T(), 1, m.Len())
	w, ok := m.Weight(dimacs.Key{Low: 1, High: 2})
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(3), w)
	require.Equal(s.T(), 2, m.Stats.Collapsed)
	require.Equal(s.T(), 1, m.Stats.Lowered)
}

// TestFirstSeenOrder checks that lowering a weight does not move its key.
func (s *MergeSuite) TestFirstSeenOrder() {
	m := merge(s, "a 5 4 10\na 1 2 1\na 3 9 2\na 4 5 1\n")

	require.Equal(s.T(), []dimacs.Key{{Low: 4, High: 5}, {Low: 1, High: 2}, {Low: 3, High: 9}}, m.Keys())
	w, _ := m.Weight(dimacs.Key{Low: 4, High: 5})
	require.Equal(s.T(), int64(1), w)
}

// TestNodeCount checks that the last header wins and a missing header yields 0.
func (s *MergeSuite) TestNodeCount() {
	require.Equal(s.T(), int64(0), merge(s, "a 1 2 3\n").Nodes)

	m := merge(s, "p sp 3 4\na 1 2 3\np sp 7\n")
	require.Equal(s.T(), int64(7), m.Nodes)
	require.Equal(s.T(), 2, m.Stats.Headers)
}

// TestSkippedLines checks that comments, blanks and unknown markers are ignored.
func (s *MergeSuite) TestSkippedLines() {
	m := merge(s, "c comment\n\nabc 1 2 3\nx 9 9 9\np sp 2 2\na 1 2 4\n")

	require.Equal(s.T(), 1, m.Len())
	require.Equal(s.T(), 4, m.Stats.Skipped)
	require.Equal(s.T(), 6, m.Stats.Lines)
}

// TestWhitespace checks that tabs and repeated spaces separate fields.
func (s *MergeSuite) TestWhitespace() {
	m := merge(s, "p\tsp\t4\na\t1   3\t -2\n   a 3 1 -1\n")

	require.Equal(s.T(), int64(4), m.Nodes)
	w, ok := m.Weight(dimacs.CanonicalKey(3, 1))
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(-2), w, "negative weights are kept as-is")
}

// TestSelfLoop checks that a loop is an ordinary key.
func (s *MergeSuite) TestSelfLoop() {
	m := merge(s, "a 2 2 8\na 2 2 6\n")

	require.Equal(s.T(), 1, m.Len())
	require.Equal(s.T(), 2, m.Stats.SelfLoops)
	require.True(s.T(), m.Keys()[0].IsLoop())
	w, _ := m.Weight(dimacs.Key{Low: 2, High: 2})
	require.Equal(s.T(), int64(6), w)
}

// TestEach checks early termination.
func (s *MergeSuite) TestEach() {
	m := merge(s, "a 1 2 1\na 2 3 1\na 3 4 1\n")

	var visited int
	m.Each(func(dimacs.Key, int64) bool {
		visited++

		return visited < 2
	})
	require.Equal(s.T(), 2, visited)
	require.Equal(s.T(), int64(6), m.Arcs())
}

func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}

func TestCanonicalKey(t *testing.T) {
	require.Equal(t, dimacs.Key{Low: 1, High: 2}, dimacs.CanonicalKey(2, 1))
	require.Equal(t, dimacs.CanonicalKey(1, 2), dimacs.CanonicalKey(2, 1))
	require.Equal(t, dimacs.Key{Low: -3, High: 0}, dimacs.CanonicalKey(0, -3))
	require.True(t, dimacs.CanonicalKey(4, 4).IsLoop())
}

func TestNormalizeAndMerge_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		wantErr error
	}{
		{"missing weight", "p sp 3\na 1 2\n", 2, dimacs.ErrMalformedArc},
		{"extra field", "a 1 2 3 4\n", 1, dimacs.ErrMalformedArc},
		{"non-integer", "a 1 2 3\na 1 x 3\n", 2, strconv.ErrSyntax},
		{"float weight", "a 1 2 3.5\n", 1, dimacs.ErrMalformedArc},
		{"overflow", "a 1 2 99999999999999999999\n", 1, strconv.ErrRange},
		{"bare marker", "a\n", 1, dimacs.ErrMalformedArc},
		{"header without count", "p sp\n", 1, dimacs.ErrMalformedHeader},
		{"header bad count", "p sp n\n", 1, dimacs.ErrMalformedHeader},
		{"header negative count", "p sp -1\n", 1, dimacs.ErrMalformedHeader},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := dimacs.NormalizeAndMerge(strings.NewReader(tc.input))
			require.Nil(t, m, "no partial result on error")
			require.ErrorIs(t, err, tc.wantErr)

			var pe *dimacs.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)
			require.Contains(t, err.Error(), "line "+strconv.Itoa(tc.line))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestNormalizeAndMerge_ReadError(t *testing.T) {
	_, err := dimacs.NormalizeAndMerge(failingReader{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk on fire")
}
