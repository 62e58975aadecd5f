package types

// Value is a centipawn score, from White's perspective in Eval, from the
// side-to-move's perspective inside negamax (spec.md §4.D).
type Value int32

const (
	// ValueDraw is the score of a drawn (stalemate) position.
	ValueDraw Value = 0
	// Mate is the spec's MATE constant: mate scores are Mate-ply.
	Mate Value = 1_000_000
	// Infinite is a sentinel wider than any real evaluation, used as the
	// initial alpha-beta window.
	Infinite Value = Mate + 1
	// ValueNone marks "no value computed yet".
	ValueNone Value = -Infinite - 1
)

// IsMateScore reports whether v reflects a forced mate rather than a
// material/positional evaluation.
func (v Value) IsMateScore() bool {
	return v >= Mate-1000 || v <= -Mate+1000
}
