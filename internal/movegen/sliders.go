package movegen

import (
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// genSliderMoves implements spec.md §4.B's bishop/rook/queen generators:
// walk along the piece's rays, stopping at the first non-empty square,
// including a capture if that square holds an enemy piece. Queen walks
// all eight directions; bishop the four diagonals; rook the four
// orthogonals.
func genSliderMoves(pos *position.Position, us Color, pt PieceType, buf []Move) []Move {
	piece := MakePiece(us, pt)
	var dirs [][2]int
	switch pt {
	case Bishop:
		dirs = diagonalDirs[:]
	case Rook:
		dirs = orthogonalDirs[:]
	case Queen:
		dirs = append(append([][2]int{}, diagonalDirs[:]...), orthogonalDirs[:]...)
	}

	for sq := SqA1; sq < SqLength; sq++ {
		if pos.Piece(sq) != piece {
			continue
		}
		for _, d := range dirs {
			cur := sq
			for {
				to, ok := offsetSquare(cur, d[0], d[1])
				if !ok {
					break
				}
				target := pos.Piece(to)
				if target == Empty {
					buf = append(buf, Move{From: sq, To: to})
					cur = to
					continue
				}
				if target.Color() != us {
					buf = append(buf, Move{From: sq, To: to, IsCapture: true})
				}
				break
			}
		}
	}
	return buf
}
