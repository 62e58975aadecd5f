// Package search implements spec.md §4.D's move search: iterative
// deepening over a negamax alpha-beta tree, with quiescence search,
// MVV-LVA/killer/history move ordering, and a transposition table.
// Grounded on the teacher's internal/search package (Search/Result/
// Statistics shape, iterative-deepening driver in search.go, negamax
// body in alphabeta.go), stripped of PVS, null-move pruning, mate
// distance pruning, pondering, and the UCI goroutine/semaphore
// machinery - spec.md's closed search algorithm doesn't call for them.
package search

import (
	"time"

	"github.com/kpeterson/chesscore/internal/config"
	"github.com/kpeterson/chesscore/internal/evaluator"
	"github.com/kpeterson/chesscore/internal/history"
	myLogging "github.com/kpeterson/chesscore/internal/logging"
	"github.com/kpeterson/chesscore/internal/movegen"
	"github.com/kpeterson/chesscore/internal/position"
	"github.com/kpeterson/chesscore/internal/transpositiontable"
	. "github.com/kpeterson/chesscore/internal/types"

	"github.com/op/go-logging"
)

// MaxPly is the deepest ply the search recurses to, including
// quiescence - matches movegen.MaxPly so per-ply buffers never overrun.
const MaxPly = movegen.MaxPly

// Statistics accumulates counters over one FindBestMove/FindBestMoveTimed
// call, for diagnostics and engine-strength tuning.
type Statistics struct {
	Nodes           uint64
	QNodes          uint64
	TTHits          uint64
	TTCollisions    uint64
	BetaCutoffs     uint64
	BestMoveChanges uint64
}

// Result is what a search call returns: the move to play plus enough
// bookkeeping to report it.
type Result struct {
	Best      Move
	Score     Value
	Nodes     uint64
	DepthDone int
	TimedOut  bool
	Elapsed   time.Duration
}

// Engine owns everything a search needs: the transposition table, which
// persists across moves within one game, and the killer/history
// heuristics, which every search call starts afresh. Create with
// NewEngine; reuse the same Engine for every move of a game so the TT
// keeps paying off. Not safe for concurrent searches - run at most one
// FindBestMove at a time.
type Engine struct {
	log  *logging.Logger
	tt   *transpositiontable.Table
	hist *history.History
	gen  *movegen.Generator

	stats    Statistics
	nodes    uint64
	deadline time.Time
	hasLimit bool
	stopped  bool
}

// NewEngine builds an Engine with a transposition table sized per
// config.Settings.Search.TTSizeMB and a fresh history table.
func NewEngine() *Engine {
	return &Engine{
		log:  myLogging.GetLog(),
		tt:   transpositiontable.NewTable(config.Settings.Search.TTSizeMB),
		hist: history.NewHistory(),
		gen:  movegen.NewGenerator(),
	}
}

// NewGame discards the transposition table and history heuristics -
// call between games so stale entries from an unrelated position never
// leak into move ordering or TT probes.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.hist = history.NewHistory()
}

// Statistics returns the counters from the most recently completed
// search call.
func (e *Engine) Statistics() Statistics {
	return e.stats
}

// FindBestMove runs iterative deepening from depth 1 up to and including
// depth, with no time limit, and returns the deepest result.
func (e *Engine) FindBestMove(pos *position.Position, depth int) Result {
	return e.search(pos, depth, 0, false)
}

// FindBestMoveTimed runs iterative deepening up to maxDepth, stopping
// early once moveTimeMs has elapsed. The result reflects the last fully
// completed iteration; TimedOut reports whether the time limit, rather
// than the depth limit, ended the search.
func (e *Engine) FindBestMoveTimed(pos *position.Position, maxDepth int, moveTimeMs int) Result {
	return e.search(pos, maxDepth, moveTimeMs, true)
}

func (e *Engine) search(pos *position.Position, maxDepth int, moveTimeMs int, timed bool) Result {
	start := time.Now()
	e.stats = Statistics{}
	e.nodes = 0
	e.stopped = false
	e.hasLimit = timed
	// spec.md §4.D: both entry points clear killer/history heuristics on
	// entry, but the transposition table accumulates across calls.
	e.hist = history.NewHistory()
	if timed {
		e.deadline = start.Add(time.Duration(moveTimeMs) * time.Millisecond)
	}
	collisionsBefore := e.tt.Stats.Collisions

	result := Result{Best: NoMove, Score: ValueDraw}

	for depth := 1; depth <= maxDepth; depth++ {
		best, score, timedOut := e.searchRoot(pos, depth)
		if timedOut {
			result.TimedOut = true
			break
		}
		if best != NoMove {
			if best != result.Best {
				e.stats.BestMoveChanges++
			}
			result.Best = best
			result.Score = score
			result.DepthDone = depth
		}
	}

	e.stats.TTCollisions = e.tt.Stats.Collisions - collisionsBefore
	result.Nodes = e.nodes
	result.Elapsed = time.Since(start)
	return result
}

func (e *Engine) timeUp() bool {
	if !e.hasLimit {
		return false
	}
	if e.stopped {
		return true
	}
	if time.Now().After(e.deadline) {
		e.stopped = true
	}
	return e.stopped
}
