// Package history holds the two move-ordering heuristics search.Engine
// updates as it searches: a per-ply killer-move table and a
// side/from/to history counter. Grounded on the teacher's
// internal/history package (same HistoryCount shape), extended with the
// killer table the teacher kept on the search stack instead of here.
package history

import (
	. "github.com/kpeterson/chesscore/internal/types"
)

// MaxPly bounds the killer table; search never recurses deeper than this.
const MaxPly = 128

// killersPerPly is the number of killer-move slots kept for each ply.
const killersPerPly = 2

// History accumulates move-ordering statistics across a single search.
// A fresh History belongs to one search call; killers and counts both
// depend on the position reached at each ply, so they go stale between
// unrelated searches and are thrown away rather than carried over.
type History struct {
	killers [MaxPly][killersPerPly]Move
	counts  [2][SqLength][SqLength]int64
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// RecordKiller pushes m onto ply's killer list if it isn't already the
// most recent entry, evicting the older slot. Only called for quiet moves
// that caused a beta cutoff - captures are already ordered by MVV-LVA.
func (h *History) RecordKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly || !m.IsQuiet() {
		return
	}
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// IsKiller reports whether m is one of ply's recorded killers.
func (h *History) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return h.killers[ply][0] == m || h.killers[ply][1] == m
}

// KillerSlot reports which killer slot at ply matches m: 0 or 1, or -1 if
// m is neither. Slot 0 (the most recent cutoff) outranks slot 1 in move
// ordering.
func (h *History) KillerSlot(ply int, m Move) int {
	if ply < 0 || ply >= MaxPly {
		return -1
	}
	switch m {
	case h.killers[ply][0]:
		return 0
	case h.killers[ply][1]:
		return 1
	default:
		return -1
	}
}

// RecordCutoff adds depth*depth to the history count for a quiet move by
// side that caused a beta cutoff, the standard weighting that favors
// cutoffs found deeper in the tree.
func (h *History) RecordCutoff(side Color, m Move, depth int) {
	if !m.IsQuiet() || side == ColorNone {
		return
	}
	h.counts[side][m.From][m.To] += int64(depth * depth)
}

// Score returns the accumulated history count for a quiet move by side,
// used as a move-ordering tiebreaker below killers and above the rest.
func (h *History) Score(side Color, m Move) int64 {
	if side == ColorNone {
		return 0
	}
	return h.counts[side][m.From][m.To]
}
