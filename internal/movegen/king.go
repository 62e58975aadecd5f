package movegen

import (
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// castlingOption describes one of the four castling moves: the fixed
// squares spec.md §4.A/§4.B name for its preconditions. The rook
// relocation is applied by position.MakeMove.
type castlingOption struct {
	right            CastlingRights
	kingFrom, kingTo Square
	between          []Square // must all be empty
	kingPath         []Square // king's start + crossed squares: must all be safe
}

var castlingOptions = []castlingOption{
	{WhiteKingside, SqE1, SqG1, []Square{SqF1, SqG1}, []Square{SqE1, SqF1, SqG1}},
	{WhiteQueenside, SqE1, SqC1, []Square{SqB1, SqC1, SqD1}, []Square{SqE1, SqD1, SqC1}},
	{BlackKingside, SqE8, SqG8, []Square{SqF8, SqG8}, []Square{SqE8, SqF8, SqG8}},
	{BlackQueenside, SqE8, SqC8, []Square{SqB8, SqC8, SqD8}, []Square{SqE8, SqD8, SqC8}},
}

// genKingMoves implements spec.md §4.B's king generator: the eight
// adjacent squares, plus castling when all four numbered preconditions
// hold.
func genKingMoves(pos *position.Position, us Color, buf []Move) []Move {
	king := MakePiece(us, King)
	var from Square = SqNone
	for sq := SqA1; sq < SqLength; sq++ {
		if pos.Piece(sq) == king {
			from = sq
			break
		}
	}
	if from == SqNone {
		return buf
	}

	for _, o := range kingOffsets {
		to, ok := offsetSquare(from, o[0], o[1])
		if !ok {
			continue
		}
		target := pos.Piece(to)
		if target != Empty && target.Color() == us {
			continue
		}
		buf = append(buf, Move{From: from, To: to, IsCapture: target != Empty})
	}

	enemy := us.Other()
	for _, opt := range castlingOptions {
		if !colorOwnsCastling(us, opt.right) {
			continue
		}
		if !pos.CastlingRights().Has(opt.right) {
			continue
		}
		allEmpty := true
		for _, sq := range opt.between {
			if pos.Piece(sq) != Empty {
				allEmpty = false
				break
			}
		}
		if !allEmpty {
			continue
		}
		if pos.InCheck(us) {
			continue
		}
		safe := true
		for _, sq := range opt.kingPath {
			if pos.IsSquareAttacked(sq, enemy) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		buf = append(buf, Move{From: opt.kingFrom, To: opt.kingTo, IsCastling: true})
	}

	return buf
}

func colorOwnsCastling(c Color, right CastlingRights) bool {
	if c == White {
		return right == WhiteKingside || right == WhiteQueenside
	}
	return right == BlackKingside || right == BlackQueenside
}
