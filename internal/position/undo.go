package position

import . "github.com/kpeterson/chesscore/internal/types"

// Undo is the record spec.md §3 requires: everything MakeMove needs to
// put back exactly what it changed. It is owned by whoever calls
// MakeMove and must be handed to exactly one matching UnmakeMove call;
// the two form a LIFO pair like a stack push/pop, never retained across
// an unrelated move.
type Undo struct {
	MovedPiece     Piece
	FromSquare     Square
	CapturedPiece  Piece
	CapturedSquare Square // SqNone when the move captured nothing

	// Rook relocation for castling; RookFrom is SqNone for every other
	// move.
	RookFrom  Square
	RookTo    Square
	RookPiece Piece

	PriorCastlingRights CastlingRights
	PriorEnPassant      Square
	PriorHalfmoveClock  int
	PriorFullmoveNumber int
	PriorSideToMove     Color
}
