package types

import "fmt"

// Square is a board index in [0, 64). Square 0 is a1, Square 63 is h8 -
// file increases east, rank increases north, matching spec.go's fixed
// coordinate convention.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// File returns the file index (0=a .. 7=h) of sq.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank index (0=rank1 .. 7=rank8) of sq.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// MakeSquare builds a Square from a 0-based file and rank.
func MakeSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

// IsValid reports whether sq is within [0, 64).
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// FlipVertical mirrors sq across the middle of the board (a1<->a8). Used
// to index piece-square tables from Black's point of view.
func (sq Square) FlipVertical() Square {
	return sq ^ 56
}

var fileChars = "abcdefgh"

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileChars[sq.File()], sq.Rank()+1)
}

// SquareFromString parses a1..h8 coordinate text. Returns SqNone on any
// malformed input.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return SqNone
	}
	return MakeSquare(int(file-'a'), int(rank-'1'))
}
