package position

import . "github.com/kpeterson/chesscore/internal/types"

// offsetSquare returns sq shifted by (df, dr) files/ranks, or (SqNone,
// false) if the result leaves the board.
func offsetSquare(sq Square, df, dr int) (Square, bool) {
	file := sq.File() + df
	rank := sq.Rank() + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, false
	}
	return MakeSquare(file, rank), true
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsSquareAttacked reports whether any piece of color by attacks sq. It
// does not consider pins, en-passant, or castling - spec.md §4.A assigns
// those to MoveGen's callers.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// pawns: candidate attacker squares are diagonally behind sq relative
	// to by's forward direction.
	forward := 1
	if by == Black {
		forward = -1
	}
	pawn := MakePiece(by, Pawn)
	for _, df := range [2]int{-1, 1} {
		if from, ok := offsetSquare(sq, df, -forward); ok && p.board[from] == pawn {
			return true
		}
	}

	knight := MakePiece(by, Knight)
	for _, o := range knightOffsets {
		if from, ok := offsetSquare(sq, o[0], o[1]); ok && p.board[from] == knight {
			return true
		}
	}

	king := MakePiece(by, King)
	for _, o := range kingOffsets {
		if from, ok := offsetSquare(sq, o[0], o[1]); ok && p.board[from] == king {
			return true
		}
	}

	bishop := MakePiece(by, Bishop)
	queen := MakePiece(by, Queen)
	for _, d := range diagonalDirs {
		cur := sq
		for {
			next, ok := offsetSquare(cur, d[0], d[1])
			if !ok {
				break
			}
			pc := p.board[next]
			if pc != Empty {
				if pc == bishop || pc == queen {
					return true
				}
				break
			}
			cur = next
		}
	}

	rook := MakePiece(by, Rook)
	for _, d := range orthogonalDirs {
		cur := sq
		for {
			next, ok := offsetSquare(cur, d[0], d[1])
			if !ok {
				break
			}
			pc := p.board[next]
			if pc != Empty {
				if pc == rook || pc == queen {
					return true
				}
				break
			}
			cur = next
		}
	}

	return false
}

// InCheck reports whether side's king is currently attacked.
func (p *Position) InCheck(side Color) bool {
	king := p.KingSquare(side)
	if king == SqNone {
		return false
	}
	return p.IsSquareAttacked(king, side.Other())
}
