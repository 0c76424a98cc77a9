// SPDX-License-Identifier: MIT

package dimacs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grclean/dimacs"
)

func TestVerify_Accepts(t *testing.T) {
	rep, err := dimacs.Verify(strings.NewReader("c ok\np sp 3 6\na 1 2 3\na 2 1 3\na 3 3 1\na 3 3 1\na 2 3 7\na 3 2 7\n"))
	require.NoError(t, err)
	require.Equal(t, &dimacs.Report{Nodes: 3, Arcs: 6, Pairs: 3}, rep)
}

func TestVerify_NoArcCountInHeader(t *testing.T) {
	rep, err := dimacs.Verify(strings.NewReader("p sp 2\na 1 2 1\na 2 1 1\n"))
	require.NoError(t, err)
	require.Equal(t, 1, rep.Pairs)
}

func TestVerify_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing mirror", "p sp 2 1\na 1 2 3\n", dimacs.ErrNotSymmetric},
		{"mirror weight differs", "p sp 2 2\na 1 2 3\na 2 1 4\n", dimacs.ErrNotSymmetric},
		{"single self-loop", "p sp 1 1\na 1 1 3\n", dimacs.ErrNotSymmetric},
		{"repeated arc", "p sp 2 3\na 1 2 3\na 2 1 3\na 1 2 3\n", dimacs.ErrDuplicateArc},
		{"parallel arc", "p sp 2 3\na 1 2 3\na 2 1 3\na 1 2 5\n", dimacs.ErrDuplicateArc},
		{"tripled self-loop", "p sp 1 3\na 1 1 3\na 1 1 3\na 1 1 3\n", dimacs.ErrDuplicateArc},
		{"count mismatch", "p sp 2 4\na 1 2 3\na 2 1 3\n", dimacs.ErrArcCountMismatch},
		{"bad line", "p sp 2 2\na 1 2\n", dimacs.ErrMalformedArc},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := dimacs.Verify(strings.NewReader(tc.input))
			require.Nil(t, rep)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
