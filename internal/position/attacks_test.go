package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kpeterson/chesscore/internal/types"
)

func TestIsSquareAttacked_Rook(t *testing.T) {
	p := NewPosition("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.True(t, p.IsSquareAttacked(SqA8, White))
	assert.True(t, p.IsSquareAttacked(SqE1, White))
	assert.False(t, p.IsSquareAttacked(SqA8, Black))
}

func TestIsSquareAttacked_Knight(t *testing.T) {
	p := NewPosition("4k3/8/8/8/4N3/8/8/4K3 w - - 0 1")
	assert.True(t, p.IsSquareAttacked(SqF6, White))
	assert.True(t, p.IsSquareAttacked(SqD6, White))
	assert.False(t, p.IsSquareAttacked(SqE5, White))
}

func TestIsSquareAttacked_PawnDirectionIsSideDependent(t *testing.T) {
	p := NewPosition("4k3/8/8/8/3P4/8/8/4K3 w - - 0 1")
	assert.True(t, p.IsSquareAttacked(SqC5, White))
	assert.True(t, p.IsSquareAttacked(SqE5, White))
	assert.False(t, p.IsSquareAttacked(SqC3, White))
}

func TestIsSquareAttacked_SliderBlockedByOccupant(t *testing.T) {
	p := NewPosition("4k3/8/8/8/N7/8/8/R3K3 w - - 0 1")
	assert.False(t, p.IsSquareAttacked(SqA8, White))
	assert.True(t, p.IsSquareAttacked(SqA3, White))
}

func TestInCheck(t *testing.T) {
	p := NewPosition("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.True(t, p.InCheck(White))
	assert.False(t, p.InCheck(Black))
}

func TestInCheck_NoCheckInStartPosition(t *testing.T) {
	p := NewPosition()
	assert.False(t, p.InCheck(White))
	assert.False(t, p.InCheck(Black))
}
