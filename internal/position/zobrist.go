package position

import . "github.com/kpeterson/chesscore/internal/types"

// Key is the Zobrist hash of a position, used as the transposition table
// index. spec.md §9 leaves computeHash()'s scheme unspecified (the flagged
// ambiguity); this engine recomputes it from scratch at node entry rather
// than maintaining it incrementally through MakeMove/UnmakeMove, exactly
// as §9 permits.
type Key uint64

var zobrist struct {
	piece      [PieceLength][SqLength]Key
	castling   [AllCastling + 1]Key
	enPassant  [8]Key // indexed by file
	sideToMove Key
}

func init() {
	r := newRandom(1070372) // arbitrary fixed non-zero seed, same constant every run
	for p := Empty; p < PieceLength; p++ {
		for sq := SqA1; sq < SqLength; sq++ {
			zobrist.piece[p][sq] = Key(r.rand64())
		}
	}
	for cr := NoCastling; cr <= AllCastling; cr++ {
		zobrist.castling[cr] = Key(r.rand64())
	}
	for f := 0; f < 8; f++ {
		zobrist.enPassant[f] = Key(r.rand64())
	}
	zobrist.sideToMove = Key(r.rand64())
}

// ComputeHash folds the current board, castling rights, en-passant file
// and side to move into a single Zobrist key. Pure function of p's
// observable fields - calling it twice on an unchanged Position returns
// the same key.
func (p *Position) ComputeHash() Key {
	var key Key
	for sq := SqA1; sq < SqLength; sq++ {
		if pc := p.board[sq]; pc != Empty {
			key ^= zobrist.piece[pc][sq]
		}
	}
	key ^= zobrist.castling[p.castlingRights]
	if p.enPassantSquare != SqNone {
		key ^= zobrist.enPassant[p.enPassantSquare.File()]
	}
	if p.sideToMove == Black {
		key ^= zobrist.sideToMove
	}
	return key
}
