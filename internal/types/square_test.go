package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, 0, SqA1.File())
	assert.Equal(t, 0, SqA1.Rank())
	assert.Equal(t, 7, SqH8.File())
	assert.Equal(t, 7, SqH8.Rank())
	assert.Equal(t, 4, SqE4.File())
	assert.Equal(t, 3, SqE4.Rank())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare(0, 0))
	assert.Equal(t, SqH8, MakeSquare(7, 7))
	assert.Equal(t, SqE4, MakeSquare(4, 3))
}

func TestSquare_IsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
	assert.False(t, Square(100).IsValid())
}

func TestSquare_FlipVertical(t *testing.T) {
	assert.Equal(t, SqA8, SqA1.FlipVertical())
	assert.Equal(t, SqH1, SqH8.FlipVertical())
	assert.Equal(t, SqE4, SqE5.FlipVertical())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareFromString(t *testing.T) {
	assert.Equal(t, SqA1, SquareFromString("a1"))
	assert.Equal(t, SqH8, SquareFromString("h8"))
	assert.Equal(t, SqNone, SquareFromString("i1"))
	assert.Equal(t, SqNone, SquareFromString("a9"))
	assert.Equal(t, SqNone, SquareFromString("aa"))
	assert.Equal(t, SqNone, SquareFromString("a"))
}
