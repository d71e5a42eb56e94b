package model

import (
	"strings"
	"testing"
)

func mustSquare(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("invalid square %q: %v", s, err)
	}
	return p
}

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("invalid move %q: %v", s, err)
	}
	return m
}

// boardWith builds a board from space separated square lists, e.g. "e2 d4".
func boardWith(t *testing.T, whites, blacks string) *Board {
	t.Helper()
	b := NewEmptyBoard()
	for _, sq := range strings.Fields(whites) {
		b.Set(mustSquare(t, sq), WhitePawn)
	}
	for _, sq := range strings.Fields(blacks) {
		b.Set(mustSquare(t, sq), BlackPawn)
	}
	return b
}

// play evaluates text for s and fails the test when it is rejected.
func play(t *testing.T, b *Board, s Side, text string, last *Move) *Move {
	t.Helper()
	res, err := Evaluate(b, s, mustMove(t, text), last)
	if err != nil {
		t.Fatalf("%s %s: unexpected rejection: %v", s, text, err)
	}
	return &res.Move
}
