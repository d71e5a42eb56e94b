package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benbeisheim/pawnchess/internal/model"
)

func setupGame(t *testing.T, whites, blacks string) *model.Game {
	t.Helper()
	b := model.NewEmptyBoard()
	for _, sq := range strings.Fields(whites) {
		p, err := model.ParseSquare(sq)
		if err != nil {
			t.Fatalf("square %q: %v", sq, err)
		}
		b.Set(p, model.WhitePawn)
	}
	for _, sq := range strings.Fields(blacks) {
		p, err := model.ParseSquare(sq)
		if err != nil {
			t.Fatalf("square %q: %v", sq, err)
		}
		b.Set(p, model.BlackPawn)
	}
	return model.NewGameFromSetup("test", "Alice", "Bob", model.Setup{Board: b, ToMove: model.White})
}

func TestReadNamesAndExit(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("Alice\nBob\ne2e4\nexit\n"), &out)

	white, black, ok := c.ReadNames()
	if !ok || white != "Alice" || black != "Bob" {
		t.Fatalf("ReadNames() = %q, %q, %v", white, black, ok)
	}

	game := model.NewGame("test", white, black)
	if outcome := c.Play(game); outcome.IsOver() {
		t.Fatalf("unexpected outcome %+v", outcome)
	}

	got := out.String()
	if !strings.HasPrefix(got, "Pawns-Only Chess\nFirst Player's name:\nSecond Player's name:\n") {
		t.Fatalf("unexpected preamble:\n%s", got)
	}
	for _, want := range []string{"Alice's turn:\n", "Bob's turn:\n", "4 |   |   |   |   | W |   |   |   |"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "Bye!\n") {
		t.Fatalf("output should end with Bye!:\n%s", got)
	}
}

func TestReadNamesEndOfInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("Alice\n"), &out)
	if _, _, ok := c.ReadNames(); ok {
		t.Fatalf("ReadNames should fail without a second name")
	}
}

func TestRejectedMovesReprompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("e7e5\ne2e5\nhello\ne2e9\n"), &out)
	game := model.NewGame("test", "Alice", "Bob")

	c.Play(game)

	got := out.String()
	if !strings.Contains(got, "No white pawn at e7\n") {
		t.Fatalf("missing wrong-side message:\n%s", got)
	}
	if n := strings.Count(got, "Invalid Input\n"); n != 3 {
		t.Fatalf("Invalid Input printed %d times, want 3:\n%s", n, got)
	}
	if n := strings.Count(got, "Alice's turn:\n"); n != 5 {
		t.Fatalf("Alice prompted %d times, want 5:\n%s", n, got)
	}
	if strings.Contains(got, "Bob's turn:") {
		t.Fatalf("turn passed after rejected moves:\n%s", got)
	}
	if !strings.HasSuffix(got, "Bye!\n") {
		t.Fatalf("end of input should say Bye!:\n%s", got)
	}
}

func TestPlayUntilWin(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("b7b8\n"), &out)
	game := setupGame(t, "b7", "h5")

	outcome := c.Play(game)
	if outcome.Kind != model.WinByRank || outcome.Winner != model.White {
		t.Fatalf("outcome = %+v", outcome)
	}
	got := out.String()
	if !strings.HasSuffix(got, "white wins!\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
	if !strings.Contains(got, "8 |   | W |") {
		t.Fatalf("final board not printed:\n%s", got)
	}
}

func TestPlayUntilStalemate(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("h3h4\n"), &out)
	game := setupGame(t, "a4 h3", "a5")

	if outcome := c.Play(game); outcome.Kind != model.Stalemate {
		t.Fatalf("outcome = %+v", outcome)
	}
	got := out.String()
	if strings.Contains(got, "Bob's turn:") {
		t.Fatalf("stalemated side should not be prompted:\n%s", got)
	}
	if !strings.HasSuffix(got, "Stalemate!\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
}

func TestPlayUntilCaptureEnPassant(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("c2c4\nd4c3\n"), &out)
	game := setupGame(t, "c2", "d4")

	outcome := c.Play(game)
	if outcome.Kind != model.WinByCapture || outcome.Winner != model.Black {
		t.Fatalf("outcome = %+v", outcome)
	}
	if !strings.HasSuffix(out.String(), "black wins!\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", out.String())
	}
}
