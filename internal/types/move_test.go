package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_IsQuiet(t *testing.T) {
	quiet := Move{From: SqE2, To: SqE4}
	assert.True(t, quiet.IsQuiet())

	capture := Move{From: SqE4, To: SqD5, IsCapture: true}
	assert.False(t, capture.IsQuiet())

	ep := Move{From: SqE5, To: SqD6, IsEnPassant: true, IsCapture: true}
	assert.False(t, ep.IsQuiet())

	castle := Move{From: SqE1, To: SqG1, IsCastling: true}
	assert.False(t, castle.IsQuiet())

	promo := Move{From: SqE7, To: SqE8, Promotion: WhiteQueen}
	assert.False(t, promo.IsQuiet())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", Move{From: SqE2, To: SqE4}.String())
	assert.Equal(t, "e7e8q", Move{From: SqE7, To: SqE8, Promotion: WhiteQueen}.String())
	assert.Equal(t, "a2a1n", Move{From: SqA2, To: SqA1, Promotion: BlackKnight}.String())
	assert.Equal(t, "0000", NoMove.String())
}
