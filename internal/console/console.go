// Package console is the turn controller: it reads moves from a terminal,
// feeds them to the game and prints the board until the game ends.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/pawnchess/internal/model"
)

const (
	title        = "Pawns-Only Chess"
	exitCommand  = "exit"
	farewell     = "Bye!"
	invalidInput = "Invalid Input"
)

type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadNames prints the title and asks for both players' names. ok is false when
// input ended before both names were given.
func (c *Console) ReadNames() (white, black string, ok bool) {
	c.println(title)
	c.println("First Player's name:")
	if white, ok = c.readLine(); !ok {
		return "", "", false
	}
	c.println("Second Player's name:")
	if black, ok = c.readLine(); !ok {
		return "", "", false
	}
	return white, black, true
}

// Play runs the game to its end. The returned outcome is the zero Outcome when
// a player typed exit or input ran out.
func (c *Console) Play(game *model.Game) model.Outcome {
	c.printBoard(game)
	for {
		player := game.ToMove()
		c.println(fmt.Sprintf("%s's turn:", player.Name))

		line, ok := c.readLine()
		if !ok || line == exitCommand {
			c.println(farewell)
			return model.Outcome{}
		}

		_, outcome, err := game.MakeMove(line)
		if err != nil {
			c.reject(player, line, err)
			continue
		}

		c.printBoard(game)
		if outcome.IsOver() {
			c.println(outcome.Message())
			c.println(farewell)
			return outcome
		}
	}
}

func (c *Console) reject(player model.Player, line string, err error) {
	switch {
	case errors.Is(err, model.ErrWrongSideAtSource):
		c.println(fmt.Sprintf("No %s pawn at %s", player.Side, line[:2]))
	case errors.Is(err, model.ErrMalformedInput), errors.Is(err, model.ErrIllegalDestination):
		c.println(invalidInput)
	default:
		c.println(err.Error())
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printBoard(game *model.Game) {
	fmt.Fprintln(c.out, game.RenderBoard())
}
