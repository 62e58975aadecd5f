// Package transpositiontable caches search results keyed by Zobrist hash
// so repeated positions - reached by transposing move order - are scored
// once. Grounded on the teacher's internal/transpositiontable package:
// same direct-mapped array-of-entries design and depth-preferred replace
// policy, rewritten around this engine's Move/Key types instead of the
// teacher's bit-packed 16-byte entry (Move here isn't representable in
// 16 bits, so packing buys nothing).
package transpositiontable

import (
	"math"

	. "github.com/kpeterson/chesscore/internal/types"

	"github.com/kpeterson/chesscore/internal/position"
)

// Flag records how Score relates to the true minimax value of the node
// it was stored for, per the standard alpha-beta TT contract.
type Flag int8

const (
	// NoFlag marks an empty/never-written slot.
	NoFlag Flag = iota
	// Exact means Score is the node's true value.
	Exact
	// LowerBound means the true value is at least Score (a beta cutoff).
	LowerBound
	// UpperBound means the true value is at most Score (failed low).
	UpperBound
)

// Entry is one stored search result.
type Entry struct {
	Key      position.Key
	Depth    int
	Score    Value
	Flag     Flag
	BestMove Move
}

// DefaultSizeMB is the table size config.Settings.Search.TTSizeMB defaults
// to. At the 40-byte entry size Resize assumes it holds 2^19 entries, not
// 2^20; a 2^20-entry table needs 64.
const DefaultSizeMB = 32

// Stats counts table usage for diagnostics and tuning.
type Stats struct {
	Stores     uint64
	Collisions uint64
	Probes     uint64
	Hits       uint64
}

// Table is a fixed-size, direct-mapped transposition table: one slot per
// hash bucket, no chaining. A collision simply overwrites unless the
// incoming search was shallower than what's stored.
type Table struct {
	entries []Entry
	mask    uint64
	Stats   Stats
}

// NewTable allocates a table sized to the largest power-of-two entry
// count that fits in sizeMB megabytes.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table, discarding all entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB <= 0 {
		t.entries = nil
		t.mask = 0
		return
	}
	var entrySize uint64 = 40 // approximate Entry size in bytes
	bytes := uint64(sizeMB) * 1024 * 1024
	count := uint64(1) << uint64(math.Floor(math.Log2(float64(bytes/entrySize))))
	if count == 0 {
		count = 1
	}
	t.entries = make([]Entry, count)
	t.mask = count - 1
}

// Clear discards all entries without reallocating.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.Stats = Stats{}
}

func (t *Table) index(key position.Key) uint64 {
	return uint64(key) & t.mask
}

// mateScoreToTT and mateScoreFromTT shift mate scores by the search ply
// at store/probe time (spec.md §9), so a mate found N plies from the root
// at a node ply plies deep is stored as "mate in N - ply" (a positive mate
// score grows by ply on store, shrinks by ply on probe) and converted back to the correct
// distance-from-root when a shallower search reuses the entry from a
// different ply.
func mateScoreToTT(score Value, ply int) Value {
	if score >= Mate-Value(MaxSearchPly) {
		return score + Value(ply)
	}
	if score <= -Mate+Value(MaxSearchPly) {
		return score - Value(ply)
	}
	return score
}

func mateScoreFromTT(score Value, ply int) Value {
	if score >= Mate-Value(MaxSearchPly) {
		return score - Value(ply)
	}
	if score <= -Mate+Value(MaxSearchPly) {
		return score + Value(ply)
	}
	return score
}

// MaxSearchPly bounds how deep mate scores are assumed to travel; must
// match (or exceed) the search package's own ply cap.
const MaxSearchPly = 128

// Probe looks up key at ply, translating any stored mate score back to
// this search's root. ok is false on a miss or a different key's
// collision.
func (t *Table) Probe(key position.Key, ply int) (e Entry, ok bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	t.Stats.Probes++
	slot := &t.entries[t.index(key)]
	if slot.Flag == NoFlag || slot.Key != key {
		return Entry{}, false
	}
	t.Stats.Hits++
	e = *slot
	e.Score = mateScoreFromTT(e.Score, ply)
	return e, true
}

// Store writes a search result for key at ply, translating any mate
// score to be ply-independent first. A shallower incoming search never
// overwrites a deeper stored entry for a different position.
func (t *Table) Store(key position.Key, ply, depth int, score Value, flag Flag, best Move) {
	if len(t.entries) == 0 {
		return
	}
	slot := &t.entries[t.index(key)]
	if slot.Flag != NoFlag && slot.Key != key {
		t.Stats.Collisions++
		if slot.Depth > depth {
			return
		}
	}
	t.Stats.Stores++
	slot.Key = key
	slot.Depth = depth
	slot.Score = mateScoreToTT(score, ply)
	slot.Flag = flag
	if best != NoMove {
		slot.BestMove = best
	}
}
