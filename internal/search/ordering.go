package search

import (
	"sort"

	"github.com/kpeterson/chesscore/internal/config"
	"github.com/kpeterson/chesscore/internal/history"
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

// Move-ordering tiers, highest first, exactly as spec.md §4.D's move-
// ordering score enumerates them: the TT-suggested move, then
// promotions, then MVV-LVA captures, then killers (slot 0 above slot 1),
// then the history heuristic. Grounded on the teacher's move-ordering
// scheme in internal/search/alphabeta.go, with the tier boundaries
// collapsed into plain numeric bands rather than the teacher's separate
// PV-move/killer-slot move generator stages - this search always has the
// full legal move list in hand up front.
const (
	ttMoveScore   = 2_000_000_000
	promotionBase = 1_000_000
	captureBase   = 900_000
	killerSlot0   = 800_000
	killerSlot1   = 790_000
)

// orderMoves sorts moves in place, best-guess-first, for alpha-beta's
// move ordering. pos must still be at the position moves were generated
// from (not yet advanced by any of them).
func orderMoves(moves []Move, pos *position.Position, ttMove Move, ply int, hist *history.History) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveScore(pos, moves[i], ttMove, ply, hist) > moveScore(pos, moves[j], ttMove, ply, hist)
	})
}

func moveScore(pos *position.Position, m Move, ttMove Move, ply int, hist *history.History) int64 {
	if ttMove != NoMove && m == ttMove {
		return ttMoveScore
	}
	if m.Promotion != Empty {
		return promotionBase + int64(m.Promotion.OrderingValue())
	}
	if m.IsCapture || m.IsEnPassant {
		var victim Piece
		if m.IsEnPassant {
			victim = MakePiece(pos.SideToMove().Other(), Pawn)
		} else {
			victim = pos.Piece(m.To)
		}
		attacker := pos.Piece(m.From)
		return captureBase + 10*int64(victim.OrderingValue()) - int64(attacker.OrderingValue())
	}
	if config.Settings.Search.UseKillerMoves {
		switch hist.KillerSlot(ply, m) {
		case 0:
			return killerSlot0
		case 1:
			return killerSlot1
		}
	}
	if config.Settings.Search.UseHistoryHeuristic {
		return hist.Score(pos.SideToMove(), m)
	}
	return 0
}

// captureMoves filters moves down to captures, en-passant captures, and
// promotions - the move set quiescence search explores once depth runs
// out (spec.md §4.D). A quiet promotion is kept alongside captures: its
// material swing is too large for the stand-pat cutoff to absorb safely.
func captureMoves(moves []Move) []Move {
	out := moves[:0]
	for _, m := range moves {
		if m.IsCapture || m.IsEnPassant || m.Promotion != Empty {
			out = append(out, m)
		}
	}
	return out
}
