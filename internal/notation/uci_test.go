package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

func TestParseUCI_PlainMove(t *testing.T) {
	p := position.NewPosition()
	m, err := ParseUCI(p, "e2e4")
	assert.NoError(t, err)
	assert.Equal(t, Move{From: SqE2, To: SqE4}, m)
}

func TestParseUCI_CaseInsensitive(t *testing.T) {
	p := position.NewPosition()
	m, err := ParseUCI(p, "E2E4")
	assert.NoError(t, err)
	assert.Equal(t, Move{From: SqE2, To: SqE4}, m)
}

func TestParseUCI_CaptureWithXSeparator(t *testing.T) {
	p := position.NewPosition("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	m, err := ParseUCI(p, "e4xd5")
	assert.NoError(t, err)
	assert.Equal(t, SqD5, m.To)
	assert.True(t, m.IsCapture)
}

func TestParseUCI_PromotionBareAndEqualsForm(t *testing.T) {
	p := position.NewPosition("8/4P3/8/8/8/8/8/4k2K w - - 0 1")

	m1, err := ParseUCI(p, "e7e8q")
	assert.NoError(t, err)
	assert.Equal(t, WhiteQueen, m1.Promotion)

	m2, err := ParseUCI(p, "e7e8=Q")
	assert.NoError(t, err)
	assert.Equal(t, WhiteQueen, m2.Promotion)

	m3, err := ParseUCI(p, "e7e8=N")
	assert.NoError(t, err)
	assert.Equal(t, WhiteKnight, m3.Promotion)
}

func TestParseUCI_Castling(t *testing.T) {
	p := position.NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	kingside, err := ParseUCI(p, "O-O")
	assert.NoError(t, err)
	assert.True(t, kingside.IsCastling)
	assert.Equal(t, SqG1, kingside.To)

	queenside, err := ParseUCI(p, "0-0-0")
	assert.NoError(t, err)
	assert.True(t, queenside.IsCastling)
	assert.Equal(t, SqC1, queenside.To)
}

func TestParseUCI_IllegalMoveErrors(t *testing.T) {
	p := position.NewPosition()
	_, err := ParseUCI(p, "e2e5")
	assert.Error(t, err)
}

func TestParseUCI_MalformedTextErrors(t *testing.T) {
	p := position.NewPosition()
	_, err := ParseUCI(p, "not a move")
	assert.Error(t, err)

	_, err = ParseUCI(p, "i1i2")
	assert.Error(t, err)
}

func TestFormatUCI_RoundTripsWithParseUCI(t *testing.T) {
	p := position.NewPosition()
	m, err := ParseUCI(p, "g1f3")
	assert.NoError(t, err)
	assert.Equal(t, "g1f3", FormatUCI(m))
}
