package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kpeterson/chesscore/internal/types"
)

func TestNewPosition_StartFEN(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFEN, p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AllCastling, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, WhiteRook, p.Piece(SqA1))
	assert.Equal(t, BlackKing, p.Piece(SqE8))
}

func TestNewPositionFEN_RoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/4P3/8/8/8/8/8/4k3 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		p, err := NewPositionFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestNewPositionFEN_MalformedRejected(t *testing.T) {
	tests := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBZR w KQkq - 0 1",
	}
	for _, fen := range tests {
		_, err := NewPositionFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestNewPosition_FallsBackOnMalformedFEN(t *testing.T) {
	p := NewPosition("garbage")
	assert.Equal(t, StartFEN, p.FEN())
}

func TestKingSquare(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestMakeSimpleMove_NoSpecialHandling(t *testing.T) {
	p := NewPosition()
	beforeFullmove := p.FullmoveNumber()
	beforeHalfmove := p.HalfmoveClock()
	p.MakeSimpleMove(SqE2, SqE4)
	assert.Equal(t, WhitePawn, p.Piece(SqE4))
	assert.Equal(t, Empty, p.Piece(SqE2))
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, beforeFullmove, p.FullmoveNumber())
	assert.Equal(t, beforeHalfmove, p.HalfmoveClock())
}
