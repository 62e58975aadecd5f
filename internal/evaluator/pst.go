package evaluator

import . "github.com/kpeterson/chesscore/internal/types"

// Piece-square tables, one per non-king kind plus a midgame/endgame pair
// for the king (spec.md §6). Indexed exactly as spec.md §4.C.2 states:
// rank 1 occupies the first eight entries and rank 8 the last eight, so
// pst[sq] is already oriented for White; Black looks up pst[sq^56].
//
// Values are the classic Tomasz Michniewski "simplified evaluation
// function" piece-square tables also baked into the teacher's
// internal/types/posValues.go, re-listed here in spec.md's square-direct
// (White) orientation - the teacher's own literals are authored for
// direct Black lookup (its king/pawn tables read low-to-high toward
// Black's promotion rank), the opposite orientation from what spec.md
// §4.C.2 specifies, so the row order is reversed rather than copied
// byte-for-byte.

var pawnPST = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -30, -30, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 30, 30, 0, 0, 0,
	5, 5, 10, 30, 30, 10, 5, 5,
	0, 5, 5, 5, 5, 5, 5, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [SqLength]Value{
	-50, -25, -20, -30, -30, -20, -25, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [SqLength]Value{
	-20, -10, -40, -10, -10, -40, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [SqLength]Value{
	-15, -10, 15, 15, 15, 15, -10, -15,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	5, 5, 5, 5, 5, 5, 5, 5,
}

var queenPST = [SqLength]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 2, 2, 2, 2, 0, -5,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidGamePST = [SqLength]Value{
	20, 50, 0, -20, -20, 0, 50, 20,
	0, 0, -20, -20, -20, -20, 0, 0,
	-10, -20, -20, -30, -30, -30, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndGamePST = [SqLength]Value{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -30, -30, -20, -20, -30, -30, -50,
}

// pstIndex returns the table index to use for a piece of color c standing
// on sq, per spec.md §4.C.2.
func pstIndex(c Color, sq Square) Square {
	if c == White {
		return sq
	}
	return sq.FlipVertical()
}
