package model

import "fmt"

// Side is one of the two players' colors.
type Side int

const (
	White Side = iota
	Black
)

// sideInfo is the fixed geometry of a side.
type sideInfo struct {
	name      string
	marker    Marker
	direction int
	homeRank  int
	goalRank  int
}

var sides = [2]sideInfo{
	White: {name: "white", marker: WhitePawn, direction: 1, homeRank: 1, goalRank: 7},
	Black: {name: "black", marker: BlackPawn, direction: -1, homeRank: 6, goalRank: 0},
}

func (s Side) String() string { return sides[s].name }

// Marker is the square marker of this side's pawns.
func (s Side) Marker() Marker { return sides[s].marker }

// Direction is the rank delta of a single forward step.
func (s Side) Direction() int { return sides[s].direction }

// HomeRank is the zero-based rank the side's pawns start on.
func (s Side) HomeRank() int { return sides[s].homeRank }

// GoalRank is the zero-based rank a pawn must reach to win.
func (s Side) GoalRank() int { return sides[s].goalRank }

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*s = White
	case "black":
		*s = Black
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}
