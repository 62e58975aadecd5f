// Package perft counts leaf nodes of the legal move tree to a fixed
// depth - spec.md §4.E's correctness-testing tool for MoveGen and the
// Position make/unmake protocol. It is not part of the engine's search
// path.
package perft

import (
	"fmt"

	"github.com/kpeterson/chesscore/internal/movegen"
	"github.com/kpeterson/chesscore/internal/position"
)

// Perft returns the number of legal move sequences of length depth from
// pos. Perft(1) is just the legal move count.
func Perft(pos *position.Position, depth int) uint64 {
	gen := movegen.NewGenerator()
	return perft(gen, pos, depth, 0)
}

func perft(gen *movegen.Generator, pos *position.Position, depth, ply int) uint64 {
	moves := gen.GenerateLegalMoves(pos, ply)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo, err := pos.MakeMove(m)
		if err != nil {
			continue
		}
		nodes += perft(gen, pos, depth-1, ply+1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

// DivideEntry is one root move's contribution, as reported by Divide.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Divide returns the per-root-move leaf counts plus their total, the
// standard perft cross-check against a reference engine.
func Divide(pos *position.Position, depth int) ([]DivideEntry, uint64) {
	gen := movegen.NewGenerator()
	var entries []DivideEntry
	var total uint64
	for _, m := range gen.GenerateLegalMoves(pos, 0) {
		undo, err := pos.MakeMove(m)
		if err != nil {
			continue
		}
		var nodes uint64
		if depth == 1 {
			nodes = 1
		} else {
			nodes = perft(gen, pos, depth-1, 1)
		}
		pos.UnmakeMove(m, undo)
		entries = append(entries, DivideEntry{Move: m.String(), Nodes: nodes})
		total += nodes
	}
	return entries, total
}

// Print writes Divide's output in the conventional "move: nodes" per
// line, total last, format.
func Print(pos *position.Position, depth int) {
	entries, total := Divide(pos, depth)
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("total: %d\n", total)
}
