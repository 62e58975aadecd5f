// Package movegen enumerates pseudo-legal and legal moves for a
// position's side to move: one generator function per piece kind
// (spec.md §4.B), concatenated and then filtered to legal by trial
// make/unmake.
package movegen

import (
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

// MaxPly bounds the per-ply move-list pools a Generator keeps so search
// and perft never allocate a fresh slice at every node (spec.md §5's
// "implementations may pool move lists by ply" allowance).
const MaxPly = 128

// Generator produces move lists for a Position. A Generator is not safe
// for concurrent use - its pooled buffers are shared across calls, just
// like the teacher's moveslice/movearray pools.
type Generator struct {
	pseudo [MaxPly][]Move
	legal  [MaxPly][]Move
}

// NewGenerator returns a Generator with empty pools.
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePseudoLegalMoves concatenates the six per-kind generators for
// pos's side to move (spec.md §4.B's generateAllPseudoMoves). ply selects
// which pooled buffer to reuse; callers outside a recursive search (e.g.
// one-off tests) can pass 0.
func (g *Generator) GeneratePseudoLegalMoves(pos *position.Position, ply int) []Move {
	buf := g.pseudo[ply][:0]
	us := pos.SideToMove()
	buf = genPawnMoves(pos, us, buf)
	buf = genKnightMoves(pos, us, buf)
	buf = genSliderMoves(pos, us, Bishop, buf)
	buf = genSliderMoves(pos, us, Rook, buf)
	buf = genSliderMoves(pos, us, Queen, buf)
	buf = genKingMoves(pos, us, buf)
	g.pseudo[ply] = buf
	return buf
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves down to moves that
// do not leave the mover's own king in check (spec.md §4.B's
// generateLegalMoves), including rejecting pinned-piece moves. Castling
// legality is already enforced during generation.
func (g *Generator) GenerateLegalMoves(pos *position.Position, ply int) []Move {
	us := pos.SideToMove()
	pseudo := g.GeneratePseudoLegalMoves(pos, ply)
	buf := g.legal[ply][:0]
	for _, m := range pseudo {
		undo, err := pos.MakeMove(m)
		if err != nil {
			continue
		}
		if !pos.InCheck(us) {
			buf = append(buf, m)
		}
		pos.UnmakeMove(m, undo)
	}
	g.legal[ply] = buf
	return buf
}

// GenerateLegalMovesRoot is a convenience for callers outside a search
// recursion (tests, perft's own top call, the CLI) that don't need ply
// pooling across a recursive tree.
func (g *Generator) GenerateLegalMovesRoot(pos *position.Position) []Move {
	return g.GenerateLegalMoves(pos, 0)
}

func offsetSquare(sq Square, df, dr int) (Square, bool) {
	file := sq.File() + df
	rank := sq.Rank() + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, false
	}
	return MakeSquare(file, rank), true
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func isPromotionRank(c Color, rank int) bool {
	if c == White {
		return rank == 7
	}
	return rank == 0
}

func appendPawnMove(buf []Move, us Color, from, to Square, capture, enPassant bool) []Move {
	if isPromotionRank(us, to.Rank()) {
		for _, pt := range promotionPieces {
			buf = append(buf, Move{
				From: from, To: to,
				Promotion:   MakePiece(us, pt),
				IsCapture:   capture,
				IsEnPassant: enPassant,
			})
		}
		return buf
	}
	return append(buf, Move{From: from, To: to, IsCapture: capture, IsEnPassant: enPassant})
}
