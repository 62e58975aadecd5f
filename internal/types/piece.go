package types

// PieceType is the role of a piece, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Piece is the tagged sum type of spec.md's data model: Empty plus six
// piece kinds for each of two colors, thirteen variants total. Colored
// kinds are laid out as PieceType offset by a 6-wide block per color so
// MakePiece/Color/Type are plain arithmetic rather than a lookup table.
type Piece int8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength
)

// MakePiece builds the colored piece for a role and color. Passing
// NoPieceType or ColorNone yields Empty.
func MakePiece(c Color, pt PieceType) Piece {
	if !pt.IsValid() || !c.IsValid() {
		return Empty
	}
	if c == White {
		return Piece(pt)
	}
	return Piece(int(pt) + int(King))
}

// Type returns the role of p, or NoPieceType for Empty.
func (p Piece) Type() PieceType {
	switch {
	case p == Empty:
		return NoPieceType
	case p <= WhiteKing:
		return PieceType(p)
	default:
		return PieceType(int(p) - int(King))
	}
}

// Color returns the owner of p, or ColorNone for Empty.
func (p Piece) Color() Color {
	switch {
	case p == Empty:
		return ColorNone
	case p <= WhiteKing:
		return White
	default:
		return Black
	}
}

// IsValid reports whether p is one of the thirteen legal variants.
func (p Piece) IsValid() bool {
	return p >= Empty && p < PieceLength
}

// ValueOf returns the standard material value in centipawns.
func (p Piece) ValueOf() Value {
	switch p.Type() {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 0
	default:
		return 0
	}
}

// OrderingValue returns the piece value used for move-ordering purposes
// (independent of Eval's material table - spec.md §4.D fixes King at
// 20000 here, unlike Eval's 0).
func (p Piece) OrderingValue() Value {
	if p.Type() == King {
		return 20000
	}
	return p.ValueOf()
}

var pieceChars = "-PNBRQKpnbrqk"

// String renders the piece as its FEN letter ('-' for Empty).
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceChars[p])
}

// PieceFromChar parses a single FEN piece letter. Returns Empty for any
// unrecognized or multi-character input.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return Empty
	}
	for i := 1; i < len(pieceChars); i++ {
		if pieceChars[i] == s[0] {
			return Piece(i)
		}
	}
	return Empty
}
