// Package notation converts between UCI coordinate move text ("e2e4",
// "e7e8q") and the engine's Move value. Grounded on the teacher's
// pkg/movegen.GetMoveFromUci: same regex-driven match against the legal
// move list, moved to its own package since this engine has no SAN
// counterpart to share a file with (spec.md explicitly leaves SAN out of
// scope).
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kpeterson/chesscore/internal/movegen"
	"github.com/kpeterson/chesscore/internal/position"
	. "github.com/kpeterson/chesscore/internal/types"
)

// uciPattern matches spec.md §6's coordinate grammar: four square
// letters with an optional "x" capture separator (ignored) before the
// destination and an optional "=Q"/"=R"/"=B"/"=N" or bare trailing
// promotion letter, case-insensitive.
var uciPattern = regexp.MustCompile(`(?i)^([a-h][1-8])x?([a-h][1-8])(?:=?([nbrq]))?$`)

var castlingPattern = regexp.MustCompile(`(?i)^(o-o-o|0-0-0|o-o|0-0)$`)

// ParseUCI matches text against pos's legal moves and returns the
// matching Move. An error is returned for malformed text or a
// syntactically valid move that isn't legal in pos. Accepts the four-
// character coordinate grammar (with optional "x"/"=" punctuation) plus
// the "O-O"/"O-O-O" castling literals, case-insensitive throughout.
func ParseUCI(pos *position.Position, text string) (Move, error) {
	gen := movegen.NewGenerator()
	legal := gen.GenerateLegalMovesRoot(pos)

	if castlingPattern.MatchString(text) {
		normalized := strings.ToLower(text)
		isQueenside := normalized == "o-o-o" || normalized == "0-0-0"
		for _, m := range legal {
			if !m.IsCastling {
				continue
			}
			if (m.To.File() == 2) == isQueenside { // c-file is queenside
				return m, nil
			}
		}
		return NoMove, fmt.Errorf("notation: no legal castling move %q in this position", text)
	}

	matches := uciPattern.FindStringSubmatch(text)
	if matches == nil {
		return NoMove, fmt.Errorf("notation: %q is not a UCI move", text)
	}
	want := strings.ToLower(matches[1]) + strings.ToLower(matches[2]) + strings.ToLower(matches[3])

	for _, m := range legal {
		if m.String() == want {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("notation: %q is not legal in this position", text)
}

// FormatUCI renders m as UCI coordinate text. It is identical to
// Move.String but named to pair visibly with ParseUCI at call sites.
func FormatUCI(m Move) string {
	return m.String()
}
