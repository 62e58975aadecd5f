package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpeterson/chesscore/internal/position"
)

func TestEvaluate_StartPositionIsBalanced(t *testing.T) {
	p := position.NewPosition()
	assert.EqualValues(t, 0, Evaluate(p))
}

func TestEvaluate_IsAntisymmetricUnderColorSwap(t *testing.T) {
	white := position.NewPosition("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	black := position.NewPosition("4k3/4q3/8/8/8/8/8/4K3 b - - 0 1")
	assert.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestEvaluate_MaterialDominates(t *testing.T) {
	upAQueen := position.NewPosition("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	bare := position.NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Greater(t, int(Evaluate(upAQueen)), int(Evaluate(bare)))
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	p := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	first := Evaluate(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(p))
	}
}

func TestPhase_FullMaterialIsMaxPhase(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, MaxPhase, Phase(p))
}

func TestPhase_BareKingsIsZero(t *testing.T) {
	p := position.NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, 0, Phase(p))
}

func TestPhase_ClampsAtMax(t *testing.T) {
	// Eight queens per side weigh 64 in total, well over 24; Phase must
	// still clamp to MaxPhase.
	p := position.NewPosition("qqqqk3/qqqq4/8/8/8/8/QQQQ4/QQQQK3 w - - 0 1")
	assert.Equal(t, MaxPhase, Phase(p))
}
