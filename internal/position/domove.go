package position

import (
	"fmt"

	. "github.com/kpeterson/chesscore/internal/types"
)

// rookRelocation is one castling-rook move; castlingRook gives it for each
// of the four castling destinations, fixed by spec.md §4.A step 5.
type rookRelocation struct {
	from, to Square
}

var castlingRook = map[Square]rookRelocation{
	SqG1: {SqH1, SqF1}, // white kingside
	SqC1: {SqA1, SqD1}, // white queenside
	SqG8: {SqH8, SqF8}, // black kingside
	SqC8: {SqA8, SqD8}, // black queenside
}

// MakeMove applies m to p and returns the Undo needed to reverse it. On
// any of the error conditions in spec.md §7 (out-of-range square, empty
// origin square, unrecognized castling destination) p is left unmodified
// and an error is returned.
func (p *Position) MakeMove(m Move) (Undo, error) {
	if !m.From.IsValid() || !m.To.IsValid() {
		return Undo{}, fmt.Errorf("position: move squares out of range: %s", m)
	}
	movedPiece := p.board[m.From]
	if movedPiece == Empty {
		return Undo{}, fmt.Errorf("position: no piece on origin square %s", m.From)
	}
	if m.IsCastling {
		if _, ok := castlingRook[m.To]; !ok {
			return Undo{}, fmt.Errorf("position: unknown castling destination %s", m.To)
		}
	}

	mover := p.sideToMove

	undo := Undo{
		MovedPiece:          movedPiece,
		FromSquare:          m.From,
		CapturedSquare:      SqNone,
		RookFrom:            SqNone,
		PriorCastlingRights: p.castlingRights,
		PriorEnPassant:      p.enPassantSquare,
		PriorHalfmoveClock:  p.halfmoveClock,
		PriorFullmoveNumber: p.fullmoveNumber,
		PriorSideToMove:     mover,
	}

	// step 2: determine the captured piece, if any
	if m.IsEnPassant {
		var capSq Square
		if mover == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
		undo.CapturedPiece = p.board[capSq]
		undo.CapturedSquare = capSq
	} else if p.board[m.To] != Empty {
		undo.CapturedPiece = p.board[m.To]
		undo.CapturedSquare = m.To
	}

	// step 3: clear en passant square (new one, if any, set in step 7)
	p.enPassantSquare = SqNone

	// step 4: move the piece, clearing the en-passant victim if needed
	p.board[m.To] = movedPiece
	p.board[m.From] = Empty
	if m.IsEnPassant {
		p.board[undo.CapturedSquare] = Empty
	}

	// step 5: relocate the rook for castling
	if m.IsCastling {
		rr := castlingRook[m.To]
		rookPiece := p.board[rr.from]
		p.board[rr.to] = rookPiece
		p.board[rr.from] = Empty
		undo.RookFrom = rr.from
		undo.RookTo = rr.to
		undo.RookPiece = rookPiece
	}

	// step 6: promotion
	if m.Promotion != Empty {
		p.board[m.To] = m.Promotion
	}

	// step 7: new en passant square after a double pawn push
	isPawn := movedPiece.Type() == Pawn
	diff := int(m.To) - int(m.From)
	if isPawn && (diff == 16 || diff == -16) {
		p.enPassantSquare = Square((int(m.From) + int(m.To)) / 2)
	}

	// step 8: castling rights
	p.updateCastlingRights(movedPiece, m.From, undo.CapturedPiece, undo.CapturedSquare)

	// step 9: halfmove clock
	if isPawn || undo.CapturedPiece != Empty {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	// step 10: fullmove number
	if mover == Black {
		p.fullmoveNumber++
	}

	// step 11: flip side to move
	p.sideToMove = mover.Other()

	return undo, nil
}

// updateCastlingRights clears the rights invalidated by a king move, a
// rook move from its home square, or a rook being captured on its home
// square (spec.md §4.A step 8).
func (p *Position) updateCastlingRights(movedPiece Piece, from Square, captured Piece, capturedSq Square) {
	switch movedPiece {
	case WhiteKing:
		p.castlingRights = p.castlingRights.Clear(WhiteKingside | WhiteQueenside)
	case BlackKing:
		p.castlingRights = p.castlingRights.Clear(BlackKingside | BlackQueenside)
	}
	switch from {
	case SqH1:
		p.castlingRights = p.castlingRights.Clear(WhiteKingside)
	case SqA1:
		p.castlingRights = p.castlingRights.Clear(WhiteQueenside)
	case SqH8:
		p.castlingRights = p.castlingRights.Clear(BlackKingside)
	case SqA8:
		p.castlingRights = p.castlingRights.Clear(BlackQueenside)
	}
	if captured == Empty {
		return
	}
	switch capturedSq {
	case SqH1:
		p.castlingRights = p.castlingRights.Clear(WhiteKingside)
	case SqA1:
		p.castlingRights = p.castlingRights.Clear(WhiteQueenside)
	case SqH8:
		p.castlingRights = p.castlingRights.Clear(BlackKingside)
	case SqA8:
		p.castlingRights = p.castlingRights.Clear(BlackQueenside)
	}
}

// UnmakeMove restores p to exactly the state it had before the matching
// MakeMove(m) call that produced u. m and u must be the pair returned by
// that call; intervening make/unmake calls must have been balanced.
func (p *Position) UnmakeMove(m Move, u Undo) {
	p.sideToMove = u.PriorSideToMove
	p.castlingRights = u.PriorCastlingRights
	p.enPassantSquare = u.PriorEnPassant
	p.halfmoveClock = u.PriorHalfmoveClock
	p.fullmoveNumber = u.PriorFullmoveNumber

	p.board[u.FromSquare] = u.MovedPiece
	p.board[m.To] = Empty

	if u.CapturedPiece != Empty {
		p.board[u.CapturedSquare] = u.CapturedPiece
	}

	if m.IsCastling {
		p.board[u.RookFrom] = u.RookPiece
		p.board[u.RookTo] = Empty
	}
}
