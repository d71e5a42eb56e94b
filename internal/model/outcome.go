package model

import "fmt"

type OutcomeKind string

const (
	NoOutcome    OutcomeKind = ""
	WinByRank    OutcomeKind = "winByRank"
	WinByCapture OutcomeKind = "winByCapture"
	Stalemate    OutcomeKind = "stalemate"
)

// Outcome is the end-of-game classification. Winner is only meaningful for wins.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Side        `json:"winner"`
}

func (o Outcome) IsOver() bool { return o.Kind != NoOutcome }

// Message is the line announced when the game ends.
func (o Outcome) Message() string {
	switch o.Kind {
	case WinByRank, WinByCapture:
		return fmt.Sprintf("%s wins!", o.Winner)
	case Stalemate:
		return "Stalemate!"
	}
	return ""
}

// DetectOutcome inspects the board after mover's move. The first match wins:
// mover on its goal rank, opponent out of pawns, opponent without a legal move.
// last is the move just played and decides whether the opponent may capture en passant.
func DetectOutcome(b *Board, mover Side, last *Move) Outcome {
	for x := 0; x < BoardSize; x++ {
		if b.At(Position{X: x, Y: mover.GoalRank()}) == mover.Marker() {
			return Outcome{Kind: WinByRank, Winner: mover}
		}
	}
	next := mover.Opponent()
	if b.CountPawns(next) == 0 {
		return Outcome{Kind: WinByCapture, Winner: mover}
	}
	if !HasLegalMove(b, next, last) {
		return Outcome{Kind: Stalemate}
	}
	return Outcome{}
}
