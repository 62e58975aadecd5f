package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpeterson/chesscore/internal/position"
)

// TestPerft_StartPosition checks the canonical perft node counts from
// spec.md §8 - these numbers only come out right if move generation and
// the make/unmake protocol agree bit for bit.
func TestPerft_StartPosition(t *testing.T) {
	want := map[int]uint64{
		1: 20,
		2: 400,
		3: 8_902,
		4: 197_281,
		5: 4_865_609,
	}
	for depth, nodes := range want {
		p := position.NewPosition()
		assert.Equal(t, nodes, Perft(p, depth), "perft(%d)", depth)
	}
}

// TestPerft_Kiwipete exercises castling, en passant, and promotions all
// at once - the position perft test-suites traditionally call Kiwipete.
func TestPerft_Kiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p := position.NewPosition(fen)
	assert.Equal(t, uint64(97_862), Perft(p, 3))
}

func TestDivide_MatchesPerftTotal(t *testing.T) {
	p := position.NewPosition()
	entries, total := Divide(p, 3)
	assert.Equal(t, Perft(p, 3), total)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Len(t, entries, 20)
}
