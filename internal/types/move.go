package types

import "strings"

// Move is the value object from spec.md §3: a from/to square pair, an
// optional promotion piece, and the three special-move flags the make/
// unmake protocol needs to find its captured square and any rook
// relocation without re-deriving them from the board. Moves are generated
// fresh at every node and are never retained across an unrelated
// make/unmake.
type Move struct {
	From        Square
	To          Square
	Promotion   Piece // Empty when this is not a promotion
	IsCapture   bool
	IsEnPassant bool
	IsCastling  bool
}

// NoMove is the zero value, used as "no move found" (terminal root
// position, failed notation parse, ...).
var NoMove = Move{}

// IsQuiet reports whether m is none of capture/en-passant/castling/
// promotion - the class of moves eligible for killer/history ordering
// and excluded from quiescence search.
func (m Move) IsQuiet() bool {
	return !m.IsCapture && !m.IsEnPassant && !m.IsCastling && m.Promotion == Empty
}

var promoLetter = map[PieceType]string{
	Queen:  "q",
	Rook:   "r",
	Bishop: "b",
	Knight: "n",
}

// String renders m as four-character coordinate notation plus an
// optional lowercase promotion letter, matching spec.md §6.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != Empty {
		sb.WriteString(promoLetter[m.Promotion.Type()])
	}
	return sb.String()
}
