// Package evaluator implements spec.md §4.C's static position evaluation:
// material balance plus piece-square tables, with the king's table blended
// between midgame and endgame values by a material-derived game phase.
// Grounded on the teacher's internal/evaluator package, restricted to the
// single closed algorithm spec.md §9 settles on (no mobility, pawn
// structure, or king-safety terms beyond the PST itself).
package evaluator

import (
	. "github.com/kpeterson/chesscore/internal/types"

	"github.com/kpeterson/chesscore/internal/position"
)

// MaxPhase is the phase weight of the full starting set of queens, rooks,
// bishops and knights of both sides together (12 per side); Phase clamps
// to it.
const MaxPhase = 24

// Phase returns the game-phase weight spec.md §4.C.3 defines:
// min(24, 4*queens + 2*rooks + 1*bishops + 1*knights), summed over both
// colors. 24 is the opening material count; 0 is a bare-king endgame.
func Phase(pos *position.Position) int {
	phase := 0
	for sq := SqA1; sq < SqLength; sq++ {
		switch pos.Piece(sq).Type() {
		case Queen:
			phase += 4
		case Rook:
			phase += 2
		case Bishop, Knight:
			phase += 1
		}
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

func pstFor(pt PieceType) *[SqLength]Value {
	switch pt {
	case Pawn:
		return &pawnPST
	case Knight:
		return &knightPST
	case Bishop:
		return &bishopPST
	case Rook:
		return &rookPST
	case Queen:
		return &queenPST
	default:
		return nil
	}
}

// Evaluate returns the static score of pos from White's point of view:
// positive favors White, negative favors Black, per spec.md §4.C.1.
func Evaluate(pos *position.Position) Value {
	phase := Phase(pos)
	egWeight := Value((MaxPhase - phase) * 256 / MaxPhase)
	mgWeight := Value(256 - egWeight)

	var score Value
	for sq := SqA1; sq < SqLength; sq++ {
		p := pos.Piece(sq)
		if p == Empty {
			continue
		}
		c := p.Color()
		pt := p.Type()
		idx := pstIndex(c, sq)

		var contribution Value
		if pt == King {
			blended := (kingMidGamePST[idx]*mgWeight + kingEndGamePST[idx]*egWeight) / 256
			contribution = blended
		} else {
			contribution = p.ValueOf() + pstFor(pt)[idx]
		}

		if c == White {
			score += contribution
		} else {
			score -= contribution
		}
	}
	return score
}
