package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		pt   PieceType
		want Piece
	}{
		{"white king", White, King, WhiteKing},
		{"black king", Black, King, BlackKing},
		{"white knight", White, Knight, WhiteKnight},
		{"black knight", Black, Knight, BlackKnight},
		{"invalid role", White, NoPieceType, Empty},
		{"invalid color", ColorNone, Pawn, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakePiece(tt.c, tt.pt))
		})
	}
}

func TestPieceTypeAndColor(t *testing.T) {
	assert.Equal(t, King, WhiteKing.Type())
	assert.Equal(t, King, BlackKing.Type())
	assert.Equal(t, NoPieceType, Empty.Type())
	assert.Equal(t, White, WhiteQueen.Color())
	assert.Equal(t, Black, BlackQueen.Color())
	assert.Equal(t, ColorNone, Empty.Color())
}

func TestPiece_ValueOf(t *testing.T) {
	tests := []struct {
		p    Piece
		want Value
	}{
		{WhiteKing, 0},
		{BlackKing, 0},
		{WhiteBishop, 330},
		{BlackKnight, 320},
		{WhitePawn, 100},
		{BlackQueen, 900},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.ValueOf())
	}
}

func TestPiece_OrderingValue(t *testing.T) {
	assert.EqualValues(t, 20000, WhiteKing.OrderingValue())
	assert.EqualValues(t, 20000, BlackKing.OrderingValue())
	assert.Equal(t, WhiteQueen.ValueOf(), WhiteQueen.OrderingValue())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, Empty, PieceFromChar(""))
	assert.Equal(t, Empty, PieceFromChar("nnn"))
	assert.Equal(t, Empty, PieceFromChar("-"))
	assert.Equal(t, WhiteKing, PieceFromChar("K"))
	assert.Equal(t, BlackKing, PieceFromChar("k"))
	assert.Equal(t, WhiteKnight, PieceFromChar("N"))
	assert.Equal(t, BlackKnight, PieceFromChar("n"))
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "K", WhiteKing.String())
	assert.Equal(t, "q", BlackQueen.String())
	assert.Equal(t, "-", Empty.String())
	assert.Equal(t, "-", Piece(100).String())
}
