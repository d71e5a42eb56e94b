package model

import "strings"

const BoardSize = 8

// Marker is the occupancy of a single square.
type Marker byte

const (
	Empty     Marker = ' '
	WhitePawn Marker = 'W'
	BlackPawn Marker = 'B'
)

// Side reports which side owns the pawn. ok is false for an empty square.
func (m Marker) Side() (Side, bool) {
	switch m {
	case WhitePawn:
		return White, true
	case BlackPawn:
		return Black, true
	}
	return White, false
}

type Position struct {
	X int `json:"x"` // file, a=0
	Y int `json:"y"` // rank, 1=0
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Add offsets p by dx files and dy ranks.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

type Board struct {
	squares [BoardSize][BoardSize]Marker // [rank][file]
}

// NewBoard returns the starting layout: White on rank 2, Black on rank 7.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for x := 0; x < BoardSize; x++ {
		b.squares[White.HomeRank()][x] = WhitePawn
		b.squares[Black.HomeRank()][x] = BlackPawn
	}
	return b
}

func NewEmptyBoard() *Board {
	b := &Board{}
	for y := range b.squares {
		for x := range b.squares[y] {
			b.squares[y][x] = Empty
		}
	}
	return b
}

// At returns the marker at p. Out of bounds positions read as Empty.
func (b *Board) At(p Position) Marker {
	if !p.InBounds() {
		return Empty
	}
	return b.squares[p.Y][p.X]
}

func (b *Board) Set(p Position, m Marker) {
	b.squares[p.Y][p.X] = m
}

func (b *Board) IsEmpty(p Position) bool {
	return p.InBounds() && b.At(p) == Empty
}

// IsEnemy reports whether p holds a pawn of the side opposing s.
func (b *Board) IsEnemy(p Position, s Side) bool {
	return p.InBounds() && b.At(p) == s.Opponent().Marker()
}

// Pawns lists the positions of every pawn of s, rank by rank from a1.
func (b *Board) Pawns(s Side) []Position {
	var out []Position
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b.squares[y][x] == s.Marker() {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

func (b *Board) CountPawns(s Side) int {
	return len(b.Pawns(s))
}

// Rows returns one string per rank, rank 8 first, one marker per file.
func (b *Board) Rows() []string {
	rows := make([]string, 0, BoardSize)
	for y := BoardSize - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(byte(b.squares[y][x]))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

const boardSeparator = "  +---+---+---+---+---+---+---+---+\n"

// String renders the board as the console shows it, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		sb.WriteString(boardSeparator)
		sb.WriteByte(byte('1' + y))
		sb.WriteString(" |")
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(' ')
			sb.WriteByte(byte(b.squares[y][x]))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(boardSeparator)
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
