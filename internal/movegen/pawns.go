package movegen

import (
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

// genPawnMoves implements spec.md §4.B's pawn generator: single/double
// push, diagonal captures, promotion expansion to four moves, and
// en-passant.
func genPawnMoves(pos *position.Position, us Color, buf []Move) []Move {
	pawn := MakePiece(us, Pawn)
	forward := 1
	startRank := 1
	if us == Black {
		forward = -1
		startRank = 6
	}

	for sq := SqA1; sq < SqLength; sq++ {
		if pos.Piece(sq) != pawn {
			continue
		}

		// single push
		if one, ok := offsetSquare(sq, 0, forward); ok && pos.Piece(one) == Empty {
			buf = appendPawnMove(buf, us, sq, one, false, false)

			// double push, only from the starting rank, both squares empty
			if sq.Rank() == startRank {
				if two, ok := offsetSquare(sq, 0, 2*forward); ok && pos.Piece(two) == Empty {
					buf = append(buf, Move{From: sq, To: two})
				}
			}
		}

		// diagonal captures (including en passant)
		for _, df := range [2]int{-1, 1} {
			to, ok := offsetSquare(sq, df, forward)
			if !ok {
				continue
			}
			target := pos.Piece(to)
			switch {
			case target != Empty && target.Color() != us:
				buf = appendPawnMove(buf, us, sq, to, true, false)
			case target == Empty && to == pos.EnPassantSquare() && pos.EnPassantSquare() != SqNone:
				buf = append(buf, Move{From: sq, To: to, IsCapture: true, IsEnPassant: true})
			}
		}
	}
	return buf
}
