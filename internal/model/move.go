package model

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// MoveKind classifies a legal pawn move.
type MoveKind string

const (
	Advance       MoveKind = "advance"
	DoubleAdvance MoveKind = "doubleAdvance"
	Capture       MoveKind = "capture"
	EnPassant     MoveKind = "enPassant"
)

// IsCapture reports whether the move removes an opposing pawn.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant
}

// Candidate is a legal move together with the square of the pawn it captures, if any.
type Candidate struct {
	Move     Move
	Kind     MoveKind
	Captured *Position
}

// Ply is an executed half-move as recorded in a game's history.
type Ply struct {
	Side     Side      `json:"side"`
	From     Position  `json:"from"`
	To       Position  `json:"to"`
	Kind     MoveKind  `json:"kind"`
	Captured *Position `json:"captured"`
	Notation string    `json:"notation"`
}
