// Package position represents a chess board and its full game state: an
// 8x8 mailbox array, side to move, castling rights, en-passant square,
// and the two move clocks. It provides FEN I/O, the make/unmake protocol
// search relies on, and the attack/check queries MoveGen filters legality
// with.
//
// Create an instance with NewPosition() for the start position, or
// NewPosition(fen) / NewPositionFEN(fen) to load a specific position.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/kpeterson/chesscore/internal/logging"
	. "github.com/kpeterson/chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the mutable game state described by spec.md §3.
type Position struct {
	board           [SqLength]Piece
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square // SqNone if none
	halfmoveClock   int
	fullmoveNumber  int
}

// NewPosition returns the start position, or the position described by
// the optional fen argument. A malformed fen yields the start position
// and is logged - use NewPositionFEN directly when the caller needs to
// observe the parse error.
func NewPosition(fen ...string) *Position {
	f := StartFEN
	if len(fen) > 0 {
		f = fen[0]
	}
	p, err := NewPositionFEN(f)
	if err != nil {
		log.Warningf("invalid fen %q (%v), falling back to start position", f, err)
		p, _ = NewPositionFEN(StartFEN)
	}
	return p
}

// NewPositionFEN parses fen and returns the resulting Position, or an
// error if fen is malformed. On error no partial Position is returned.
func NewPositionFEN(fen string) (*Position, error) {
	p := &Position{enPassantSquare: SqNone}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// setupBoard parses the six FEN fields into p. Fields 5 and 6 (halfmove
// clock, fullmove number) are optional and default to 0 and 1.
func (p *Position) setupBoard(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: fen needs at least 4 fields, got %d (%q)", len(fields), fen)
	}

	var board [SqLength]Piece
	rankStrs := strings.Split(fields[0], "/")
	if len(rankStrs) != 8 {
		return fmt.Errorf("position: fen placement needs 8 ranks, got %d (%q)", len(rankStrs), fields[0])
	}
	for i, rankStr := range rankStrs {
		rank := 7 - i // FEN ranks run 8 down to 1
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pc := PieceFromChar(string(c))
				if pc == Empty {
					return fmt.Errorf("position: invalid piece letter %q in fen (%q)", c, fen)
				}
				if file > 7 {
					return fmt.Errorf("position: rank %d overflows 8 files (%q)", rank+1, fields[0])
				}
				board[MakeSquare(file, rank)] = pc
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("position: rank %d has %d files, want 8 (%q)", rank+1, file, fields[0])
		}
	}

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return fmt.Errorf("position: invalid side to move %q in fen", fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			if !strings.ContainsRune("KQkq", c) {
				return fmt.Errorf("position: invalid castling field %q in fen", fields[2])
			}
		}
	}
	castlingRights := CastlingRightsFromString(fields[2])

	epSquare := SqNone
	if fields[3] != "-" {
		epSquare = SquareFromString(fields[3])
		if epSquare == SqNone {
			return fmt.Errorf("position: invalid en passant field %q in fen", fields[3])
		}
	}

	halfmoveClock := 0
	fullmoveNumber := 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("position: invalid halfmove clock %q in fen", fields[4])
		}
		halfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("position: invalid fullmove number %q in fen", fields[5])
		}
		fullmoveNumber = n
	}

	p.board = board
	p.sideToMove = sideToMove
	p.castlingRights = castlingRights
	p.enPassantSquare = epSquare
	p.halfmoveClock = halfmoveClock
	p.fullmoveNumber = fullmoveNumber
	return nil
}

// FEN renders p in Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := 7 - i
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[MakeSquare(file, rank)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

func (p *Position) String() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := 7 - i
		sb.WriteString(strconv.Itoa(rank + 1))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sb.WriteString(p.board[MakeSquare(file, rank)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(p.FEN())
	return sb.String()
}

// Piece returns the piece on sq (Empty if none).
func (p *Position) Piece(sq Square) Piece { return p.board[sq] }

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights set.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant capture-destination
// square, or SqNone if none is available.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfmoveClock returns plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current full move number.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare scans the board for c's king. Callers in hot paths
// (IsSquareAttacked, InCheck) are fine with a linear 64-cell scan here;
// spec.md §3 only guarantees exactly one king per side, it does not ask
// for an incrementally maintained cache, and keeping Position's field
// set exactly as spec.md enumerates it is what makes the "bitwise equal
// after make/unmake" invariant trivially true.
func (p *Position) KingSquare(c Color) Square {
	want := MakePiece(c, King)
	for sq := SqA1; sq < SqLength; sq++ {
		if p.board[sq] == want {
			return sq
		}
	}
	return SqNone
}

// MakeSimpleMove is the degenerate variant spec.md §4.A calls out: it
// moves whatever is on from to to and flips the side to move, with no
// legality, capture, or special-move handling at all. It exists only for
// trivial tests and must never be called from the search path - it does
// not update the move clocks.
func (p *Position) MakeSimpleMove(from, to Square) {
	p.board[to] = p.board[from]
	p.board[from] = Empty
	p.sideToMove = p.sideToMove.Other()
}
