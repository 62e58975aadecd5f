package search

import (
	"github.com/kpeterson/chesscore/internal/config"
	"github.com/kpeterson/chesscore/internal/evaluator"
	"github.com/kpeterson/chesscore/internal/position"
	"github.com/kpeterson/chesscore/internal/transpositiontable"
	. "github.com/kpeterson/chesscore/internal/types"
)

// checkEvery bounds how often a deep, one-sided recursion re-checks the
// wall clock; checking every node would show up in profiles for no gain.
const checkEvery = 2048

// evalForSideToMove returns the static evaluation from the mover's point
// of view, the sign negamax needs (spec.md's evaluator is defined from
// White's perspective only).
func evalForSideToMove(pos *position.Position) Value {
	v := evaluator.Evaluate(pos)
	if pos.SideToMove() == Black {
		v = -v
	}
	return v
}

// searchRoot runs one iterative-deepening pass at depth from pos,
// returning the best move found, its score, and whether the deadline cut
// it short. Kept separate from negamax because the root always searches
// every legal move and records which one was best, rather than pruning
// once a cutoff is found.
func (e *Engine) searchRoot(pos *position.Position, depth int) (Move, Value, bool) {
	moves := e.gen.GenerateLegalMovesRoot(pos)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return NoMove, -Mate, false
		}
		return NoMove, ValueDraw, false
	}

	var ttMove Move
	hash := pos.ComputeHash()
	if config.Settings.Search.UseTranspositionTable {
		if entry, ok := e.tt.Probe(hash, 0); ok {
			ttMove = entry.BestMove
		}
	}
	orderMoves(moves, pos, ttMove, 0, e.hist)

	alpha, beta := -Infinite, Infinite
	bestMove := moves[0]
	bestScore := -Infinite
	timedOut := false

	for i, m := range moves {
		if i > 0 && e.timeUp() {
			timedOut = true
			break
		}
		undo, err := pos.MakeMove(m)
		if err != nil {
			continue
		}
		score := -e.negamax(pos, depth-1, 1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if config.Settings.Search.UseTranspositionTable {
		e.tt.Store(hash, 0, depth, bestScore, transpositiontable.Exact, bestMove)
	}
	// A deadline that fired inside the last move's subtree leaves its score
	// unreliable even though the loop ran to the end.
	return bestMove, bestScore, timedOut || e.stopped
}

// negamax is the alpha-beta search proper, operating on the side to
// move's own point of view: a child's score is negated and becomes the
// parent's. Grounded on the teacher's internal/search/alphabeta.go
// search(), trimmed to spec.md's closed feature set (no PVS, null-move
// pruning, or mate-distance pruning).
func (e *Engine) negamax(pos *position.Position, depth, ply int, alpha, beta Value) Value {
	e.nodes++
	e.stats.Nodes++
	if e.nodes%checkEvery == 0 && e.timeUp() {
		return alpha
	}

	if depth <= 0 || ply >= MaxPly {
		if config.Settings.Search.UseQuiescence {
			return e.quiescence(pos, ply, alpha, beta)
		}
		return evalForSideToMove(pos)
	}

	moves := e.gen.GenerateLegalMoves(pos, ply)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return -Mate + Value(ply)
		}
		return ValueDraw
	}

	var ttMove Move
	hash := pos.ComputeHash()
	if config.Settings.Search.UseTranspositionTable {
		if entry, ok := e.tt.Probe(hash, ply); ok {
			e.stats.TTHits++
			if entry.Depth >= depth {
				switch entry.Flag {
				case transpositiontable.Exact:
					return entry.Score
				case transpositiontable.LowerBound:
					if entry.Score > alpha {
						alpha = entry.Score
					}
				case transpositiontable.UpperBound:
					if entry.Score < beta {
						beta = entry.Score
					}
				}
				if alpha >= beta {
					return entry.Score
				}
			}
			ttMove = entry.BestMove
		}
	}
	orderMoves(moves, pos, ttMove, ply, e.hist)

	originalAlpha := alpha
	bestScore := -Infinite
	bestMove := NoMove

	for _, m := range moves {
		undo, err := pos.MakeMove(m)
		if err != nil {
			continue
		}
		score := -e.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			e.stats.BetaCutoffs++
			if m.IsQuiet() {
				if config.Settings.Search.UseKillerMoves {
					e.hist.RecordKiller(ply, m)
				}
				if config.Settings.Search.UseHistoryHeuristic {
					e.hist.RecordCutoff(pos.SideToMove(), m, depth)
				}
			}
			break
		}
	}

	if config.Settings.Search.UseTranspositionTable {
		var flag transpositiontable.Flag
		switch {
		case bestScore <= originalAlpha:
			flag = transpositiontable.UpperBound
		case bestScore >= beta:
			flag = transpositiontable.LowerBound
		default:
			flag = transpositiontable.Exact
		}
		e.tt.Store(hash, ply, depth, bestScore, flag, bestMove)
	}
	return bestScore
}

// quiescence extends the search along capture sequences past depth 0 so
// the evaluation returned at a leaf isn't hostage to whatever capture
// happens to be unresolved there (spec.md §4.D's "settle the position"
// requirement). A side in check must search every legal reply, not just
// captures, since it may have no capture that escapes check at all.
func (e *Engine) quiescence(pos *position.Position, ply int, alpha, beta Value) Value {
	e.nodes++
	e.stats.Nodes++
	e.stats.QNodes++
	if ply >= MaxPly {
		return evalForSideToMove(pos)
	}

	inCheck := pos.InCheck(pos.SideToMove())
	if !inCheck {
		standPat := evalForSideToMove(pos)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves []Move
	if inCheck {
		moves = e.gen.GenerateLegalMoves(pos, ply)
		if len(moves) == 0 {
			return -Mate + Value(ply)
		}
	} else {
		moves = captureMoves(e.gen.GenerateLegalMoves(pos, ply))
	}
	orderMoves(moves, pos, NoMove, ply, e.hist)

	for _, m := range moves {
		undo, err := pos.MakeMove(m)
		if err != nil {
			continue
		}
		score := -e.quiescence(pos, ply+1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
