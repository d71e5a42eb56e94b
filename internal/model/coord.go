package model

import (
	"fmt"
	"regexp"
)

var movePattern = regexp.MustCompile(`^([a-h][1-8]){2}$`)

// ParseSquare converts "e4" style text into a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, ErrMalformedInput)
	}
	x, err := FileIndex(s[0])
	if err != nil {
		return Position{}, err
	}
	y, err := RankIndex(s[1])
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

// FileIndex maps 'a'..'h' to 0..7.
func FileIndex(c byte) (int, error) {
	if c < 'a' || c > 'h' {
		return 0, fmt.Errorf("file %q: %w", c, ErrMalformedInput)
	}
	return int(c - 'a'), nil
}

// RankIndex maps '1'..'8' to 0..7.
func RankIndex(c byte) (int, error) {
	if c < '1' || c > '8' {
		return 0, fmt.Errorf("rank %q: %w", c, ErrMalformedInput)
	}
	return int(c - '1'), nil
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.X+'a')
}

func (p Position) getRankNotation() string {
	return fmt.Sprintf("%d", p.Y+1)
}

func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return p.getFileNotation() + p.getRankNotation()
}

// ParseMove accepts exactly four characters, file-rank-file-rank, e.g. "e2e4".
func ParseMove(text string) (Move, error) {
	if !movePattern.MatchString(text) {
		return Move{}, fmt.Errorf("move %q: %w", text, ErrMalformedInput)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
