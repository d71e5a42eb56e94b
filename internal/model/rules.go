package model

import "fmt"

// Result is the outcome of a successfully evaluated move.
type Result struct {
	Move     Move
	Kind     MoveKind
	Captured *Position
}

// PawnMoves lists every legal destination of the pawn of side s standing on from.
// last is the previous half-move, or nil before the first move; it only matters for
// en passant. Both move validation and stalemate detection go through this function.
func PawnMoves(b *Board, s Side, from Position, last *Move) []Candidate {
	if b.At(from) != s.Marker() {
		return nil
	}
	var moves []Candidate
	dir := s.Direction()

	// Forward 1, and forward 2 from the home rank through an empty square
	one := from.Add(0, dir)
	if b.IsEmpty(one) {
		moves = append(moves, Candidate{Move: Move{From: from, To: one}, Kind: Advance})
		two := from.Add(0, 2*dir)
		if from.Y == s.HomeRank() && b.IsEmpty(two) {
			moves = append(moves, Candidate{Move: Move{From: from, To: two}, Kind: DoubleAdvance})
		}
	}

	for _, dx := range []int{-1, 1} {
		to := from.Add(dx, dir)
		if !to.InBounds() {
			continue
		}
		if b.IsEnemy(to, s) {
			captured := to
			moves = append(moves, Candidate{Move: Move{From: from, To: to}, Kind: Capture, Captured: &captured})
			continue
		}
		if victim, ok := enPassantVictim(b, s, to, last); ok {
			moves = append(moves, Candidate{Move: Move{From: from, To: to}, Kind: EnPassant, Captured: &victim})
		}
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured by moving a pawn of s
// diagonally onto the empty square to. The capture is only available when last was
// the opponent's double advance landing beside the capturing pawn.
func enPassantVictim(b *Board, s Side, to Position, last *Move) (Position, bool) {
	if last == nil || !b.IsEmpty(to) {
		return Position{}, false
	}
	opp := s.Opponent()
	victim := to.Add(0, -s.Direction())
	isDouble := last.From.X == last.To.X &&
		last.From.Y == opp.HomeRank() &&
		last.To.Y == opp.HomeRank()+2*opp.Direction()
	if !isDouble || last.To != victim || b.At(victim) != opp.Marker() {
		return Position{}, false
	}
	return victim, true
}

// Evaluate checks move for side s against the board and applies it when legal.
// On rejection the board is left untouched.
func Evaluate(b *Board, s Side, move Move, last *Move) (Result, error) {
	if !move.From.InBounds() || b.At(move.From) != s.Marker() {
		return Result{}, fmt.Errorf("no %s pawn at %s: %w", s, move.From, ErrWrongSideAtSource)
	}
	if !move.To.InBounds() {
		return Result{}, fmt.Errorf("%s: %w", move, ErrIllegalDestination)
	}
	for _, c := range PawnMoves(b, s, move.From, last) {
		if c.Move.To != move.To {
			continue
		}
		apply(b, s, c)
		return Result{Move: c.Move, Kind: c.Kind, Captured: c.Captured}, nil
	}
	return Result{}, fmt.Errorf("%s: %w", move, ErrIllegalDestination)
}

func apply(b *Board, s Side, c Candidate) {
	if c.Captured != nil {
		b.Set(*c.Captured, Empty)
	}
	b.Set(c.Move.From, Empty)
	b.Set(c.Move.To, s.Marker())
}

// HasLegalMove reports whether any pawn of s has at least one legal move.
func HasLegalMove(b *Board, s Side, last *Move) bool {
	for _, from := range b.Pawns(s) {
		if len(PawnMoves(b, s, from, last)) > 0 {
			return true
		}
	}
	return false
}
