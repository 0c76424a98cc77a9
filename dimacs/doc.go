// Package dimacs reads and writes weighted graphs in the DIMACS shortest-path
// ".gr" text format and normalizes them into a canonical, symmetric edge list.
//
// Format:
//
//	c <free text>            comment (ignored)
//	p sp <nodes> [<arcs>]    problem line; nodes is the 3rd token
//	a <u> <v> <w>            arc from u to v with integer weight w
//
// Any line whose first token is neither "p" nor "a" is skipped.
//
// Cleaning is a single pass in two phases:
//
//  1. NormalizeAndMerge streams the input and folds every arc into a
//     canonical undirected key (min(u,v), max(u,v)). Repeated keys keep the
//     minimum weight. Keys remember the order they were first seen in.
//  2. EmitSymmetric writes a fresh header "p sp <nodes> <2·pairs>" followed by
//     both directed arcs of every merged pair, in first-seen order.
//
// Example:
//
//	p sp 3            p sp 3 4
//	a 1 2 5           a 1 2 3
//	a 2 1 3     ⇒     a 2 1 3
//	a 2 3 7           a 2 3 7
//	                  a 3 2 7
//
// Self-loops (u == v) are ordinary keys and come out as two identical lines.
//
// Errors:
//
//	ErrMalformedArc     - an "a" line does not carry exactly three integers.
//	ErrMalformedHeader  - a "p" line has no integer node count at token 2.
//	ErrInputNotFound    - CleanFile/VerifyFile input path does not exist.
//	ErrNotSymmetric     - Verify found an arc without its mirror.
//	ErrDuplicateArc     - Verify found the same directed arc twice.
//	ErrArcCountMismatch - Verify found a header arc count that disagrees with the body.
//
// Parse failures are reported as *ParseError (line number + offending text)
// wrapping one of the sentinels above; match them with errors.Is / errors.As.
//
// Complexity: O(L) time over L input lines, O(P) memory for P distinct pairs.
package dimacs
