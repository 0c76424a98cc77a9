// Package grclean turns noisy DIMACS shortest-path graphs into clean,
// symmetric edge lists.
//
// What it does:
//
//   - Collapses every unordered node pair to one edge with the minimum weight.
//   - Re-emits each edge as both directed arcs, with a recomputed header.
//   - Verifies that an existing file already satisfies that contract.
//
// Layout:
//
//	dimacs/       - .gr parsing, canonical keys, MIN merge, symmetric emit, verify
//	config/       - YAML + .env + environment configuration
//	logging/      - zap logger construction
//	cli/          - cobra commands (clean, check)
//	cmd/grclean/  - binary entry point
//
// Quick example:
//
//	p sp 3        p sp 3 4
//	a 1 2 5       a 1 2 3
//	a 2 1 3   ⇒   a 2 1 3
//	a 2 3 7       a 2 3 7
//	              a 3 2 7
//
//	go install github.com/katalvlaran/grclean/cmd/grclean@latest
package grclean
