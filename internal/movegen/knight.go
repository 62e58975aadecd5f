package movegen

import (
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// genKnightMoves implements spec.md §4.B's knight generator: eight fixed
// offsets, rejected by the board-edge check in offsetSquare when they
// would wrap around a file.
func genKnightMoves(pos *position.Position, us Color, buf []Move) []Move {
	knight := MakePiece(us, Knight)
	for sq := SqA1; sq < SqLength; sq++ {
		if pos.Piece(sq) != knight {
			continue
		}
		for _, o := range knightOffsets {
			to, ok := offsetSquare(sq, o[0], o[1])
			if !ok {
				continue
			}
			target := pos.Piece(to)
			if target != Empty && target.Color() == us {
				continue
			}
			buf = append(buf, Move{From: sq, To: to, IsCapture: target != Empty})
		}
	}
	return buf
}
