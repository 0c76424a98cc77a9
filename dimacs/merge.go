// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: NormalizeAndMerge and the insertion-ordered Merged accumulator.
// Determinism:
//   - Keys iterate in first-seen order, independent of later weight updates.

package dimacs

import (
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Merged holds one weight per undirected pair, in first-seen order.
// It is built by NormalizeAndMerge and is not safe for concurrent mutation.
type Merged struct {
	// Nodes is the node count of the last "p" line, or 0 if none was seen.
	Nodes int64

	// Stats describes the pass that produced this value.
	Stats Stats

	weights *orderedmap.OrderedMap[Key, int64]
}

// NewMerged returns an empty accumulator with the given node count.
func NewMerged(nodes int64) *Merged {
	return &Merged{Nodes: nodes, weights: orderedmap.New[Key, int64]()}
}

// Add folds the arc (u,v,w) into the accumulator under MIN policy.
// It reports whether the key was new.
func (m *Merged) Add(u, v, w int64) bool {
	k := CanonicalKey(u, v)
	cur, ok := m.weights.Get(k)
	if !ok {
		m.weights.Set(k, w)

		return true
	}

	m.Stats.Collapsed++
	if w < cur { // ties keep the stored value
		m.weights.Set(k, w) // Set on an existing key keeps its position
		m.Stats.Lowered++
	}

	return false
}

// Len is the number of distinct undirected pairs.
func (m *Merged) Len() int { return m.weights.Len() }

// Arcs is the number of directed arcs EmitSymmetric will write.
func (m *Merged) Arcs() int64 { return 2 * int64(m.weights.Len()) }

// Weight returns the merged weight for k.
func (m *Merged) Weight(k Key) (int64, bool) { return m.weights.Get(k) }

// Keys returns the pairs in first-seen order.
func (m *Merged) Keys() []Key {
	keys := make([]Key, 0, m.weights.Len())
	for p := m.weights.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}

	return keys
}

// Each calls fn for every pair in first-seen order until fn returns false.
func (m *Merged) Each(fn func(k Key, w int64) bool) {
	for p := m.weights.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// NormalizeAndMerge reads a .gr stream and collapses it to one minimum-weight
// entry per unordered pair.
//
// Behavior:
//   - "p" lines set the node count; the last one wins.
//   - "a" lines are canonicalized with CanonicalKey and merged with MIN.
//   - All other lines are counted in Stats.Skipped and ignored.
//
// Errors:
//   - *ParseError wrapping ErrMalformedArc / ErrMalformedHeader on the first bad line.
//   - Wrapped reader errors.
//
// On error the partial accumulator is discarded and nil is returned.
//
// Complexity: O(L) time, O(P) memory.
func NormalizeAndMerge(r io.Reader) (*Merged, error) {
	m := NewMerged(0)

	err := scan(r, visitor{
		header: func(_ int, h Header) error {
			m.Nodes = h.Nodes
			m.Stats.Headers++

			return nil
		},
		arc: func(_ int, a Arc) error {
			m.Stats.ArcsRead++
			if a.U == a.V {
				m.Stats.SelfLoops++
			}
			m.Add(a.U, a.V, a.W)

			return nil
		},
		other: func(int) { m.Stats.Skipped++ },
	})
	if err != nil {
		return nil, err
	}
	m.Stats.Lines = m.Stats.ArcsRead + m.Stats.Headers + m.Stats.Skipped

	return m, nil
}
