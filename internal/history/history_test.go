package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kpeterson/chesscore/internal/types"
)

func TestRecordKiller_PushesAndEvicts(t *testing.T) {
	h := NewHistory()
	m1 := Move{From: SqE2, To: SqE4}
	m2 := Move{From: SqD2, To: SqD4}
	m3 := Move{From: SqG1, To: SqF3}

	h.RecordKiller(3, m1)
	assert.Equal(t, 0, h.KillerSlot(3, m1))

	h.RecordKiller(3, m2)
	assert.Equal(t, 0, h.KillerSlot(3, m2))
	assert.Equal(t, 1, h.KillerSlot(3, m1))

	h.RecordKiller(3, m3)
	assert.Equal(t, 0, h.KillerSlot(3, m3))
	assert.Equal(t, 1, h.KillerSlot(3, m2))
	assert.Equal(t, -1, h.KillerSlot(3, m1))
}

func TestRecordKiller_RepeatDoesNotDuplicateSlot(t *testing.T) {
	h := NewHistory()
	m1 := Move{From: SqE2, To: SqE4}
	m2 := Move{From: SqD2, To: SqD4}

	h.RecordKiller(1, m1)
	h.RecordKiller(1, m2)
	h.RecordKiller(1, m1)
	assert.Equal(t, 0, h.KillerSlot(1, m1))
	assert.Equal(t, 1, h.KillerSlot(1, m2))
}

func TestRecordKiller_IgnoresCaptures(t *testing.T) {
	h := NewHistory()
	capture := Move{From: SqE4, To: SqD5, IsCapture: true}
	h.RecordKiller(0, capture)
	assert.Equal(t, -1, h.KillerSlot(0, capture))
	assert.False(t, h.IsKiller(0, capture))
}

func TestRecordKiller_IgnoresPromotionsAndCastling(t *testing.T) {
	h := NewHistory()
	promotion := Move{From: SqE7, To: SqE8, Promotion: WhiteQueen}
	castling := Move{From: SqE1, To: SqG1, IsCastling: true}

	h.RecordKiller(0, promotion)
	assert.Equal(t, -1, h.KillerSlot(0, promotion))

	h.RecordKiller(0, castling)
	assert.Equal(t, -1, h.KillerSlot(0, castling))
}

func TestKillerSlot_OutOfRangePlyIsNegOne(t *testing.T) {
	h := NewHistory()
	m := Move{From: SqE2, To: SqE4}
	assert.Equal(t, -1, h.KillerSlot(-1, m))
	assert.Equal(t, -1, h.KillerSlot(MaxPly, m))
}

func TestRecordCutoff_WeightsByDepthSquared(t *testing.T) {
	h := NewHistory()
	m := Move{From: SqE2, To: SqE4}
	h.RecordCutoff(White, m, 3)
	assert.EqualValues(t, 9, h.Score(White, m))

	h.RecordCutoff(White, m, 4)
	assert.EqualValues(t, 9+16, h.Score(White, m))
}

func TestRecordCutoff_IgnoresCapturesAndTracksPerSide(t *testing.T) {
	h := NewHistory()
	m := Move{From: SqE2, To: SqE4}
	capture := Move{From: SqE4, To: SqD5, IsCapture: true}

	h.RecordCutoff(White, capture, 5)
	assert.EqualValues(t, 0, h.Score(White, capture))

	h.RecordCutoff(White, m, 2)
	assert.EqualValues(t, 4, h.Score(White, m))
	assert.EqualValues(t, 0, h.Score(Black, m))
}

func TestRecordCutoff_IgnoresPromotionsAndCastling(t *testing.T) {
	h := NewHistory()
	promotion := Move{From: SqE7, To: SqE8, Promotion: WhiteQueen}
	castling := Move{From: SqE1, To: SqG1, IsCastling: true}

	h.RecordCutoff(White, promotion, 5)
	assert.EqualValues(t, 0, h.Score(White, promotion))

	h.RecordCutoff(White, castling, 5)
	assert.EqualValues(t, 0, h.Score(White, castling))
}
