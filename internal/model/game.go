package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/pawnchess/internal/ws"
)

// Observer receives state pushes. *websocket.Conn satisfies it.
type Observer interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections watching a specific game
type GameConnections struct {
	connections map[string]Observer // viewerID -> connection
	mu          sync.RWMutex
	sendMu      sync.Mutex // one writer per connection at a time
}

// The Game struct owns a single game's state and its spectators
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	toMove      Side
	lastMove    *Move
	outcome     Outcome
	history     []Ply
	captured    CapturedPawns
	players     [2]Player
	clocks      [2]*Clock
	connections *GameConnections
}

// GameState is the JSON snapshot pushed to spectators.
type GameState struct {
	ID          string        `json:"id"`
	Board       []string      `json:"board"` // rank 8 first, one marker per file
	ToMove      Side          `json:"toMove"`
	MoveHistory []Ply         `json:"moveHistory"`
	Captured    CapturedPawns `json:"capturedPawns"`
	LastMove    *Move         `json:"lastMove"`
	Outcome     *Outcome      `json:"outcome"`
	Result      string        `json:"result"`
	Players     struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// CapturedPawns counts the opposing pawns each side has taken.
type CapturedPawns struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// Setup is a position to start a game from.
type Setup struct {
	Board    *Board
	ToMove   Side
	LastMove *Move
}

func NewGame(id string, whiteName, blackName string) *Game {
	return NewGameFromSetup(id, whiteName, blackName, Setup{Board: NewBoard(), ToMove: White})
}

func NewGameFromSetup(id string, whiteName, blackName string, setup Setup) *Game {
	if setup.Board == nil {
		setup.Board = NewBoard()
	}
	g := &Game{
		ID:          id,
		board:       setup.Board,
		toMove:      setup.ToMove,
		lastMove:    setup.LastMove,
		history:     make([]Ply, 0),
		players:     [2]Player{White: {Name: whiteName, Side: White}, Black: {Name: blackName, Side: Black}},
		clocks:      [2]*Clock{White: NewClock(), Black: NewClock()},
		connections: NewGameConnections(),
	}
	g.clocks[g.toMove].Start()
	return g
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Observer),
	}
}

// ToMove returns the player whose turn it is.
func (g *Game) ToMove() Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.players[g.toMove]
}

func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.outcome
}

// RenderBoard returns the console rendering of the current board.
func (g *Game) RenderBoard() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.String()
}

// MakeMove plays text ("e2e4") for the side to move. On error nothing changes.
func (g *Game) MakeMove(text string) (Ply, Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome.IsOver() {
		return Ply{}, g.outcome, ErrGameOver
	}
	move, err := ParseMove(text)
	if err != nil {
		return Ply{}, Outcome{}, err
	}
	mover := g.toMove
	res, err := Evaluate(g.board, mover, move, g.lastMove)
	if err != nil {
		return Ply{}, Outcome{}, err
	}

	g.clocks[mover].Stop()
	ply := Ply{
		Side:     mover,
		From:     res.Move.From,
		To:       res.Move.To,
		Kind:     res.Kind,
		Captured: res.Captured,
		Notation: res.Move.String(),
	}
	g.history = append(g.history, ply)
	if res.Kind.IsCapture() {
		switch mover {
		case White:
			g.captured.White++
		case Black:
			g.captured.Black++
		}
	}
	executed := res.Move
	g.lastMove = &executed

	g.outcome = DetectOutcome(g.board, mover, g.lastMove)
	if !g.outcome.IsOver() {
		g.switchTurn()
		g.clocks[g.toMove].Start()
	}

	state := g.snapshot()
	go g.broadcastState(state)

	return ply, g.outcome, nil
}

func (g *Game) switchTurn() {
	g.toMove = g.toMove.Opponent()
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// snapshot copies the state; callers hold g.mu.
func (g *Game) snapshot() GameState {
	state := GameState{
		ID:          g.ID,
		Board:       g.board.Rows(),
		ToMove:      g.toMove,
		MoveHistory: append(make([]Ply, 0, len(g.history)), g.history...),
		Captured:    g.captured,
		Result:      g.outcome.Message(),
	}
	if g.lastMove != nil {
		last := *g.lastMove
		state.LastMove = &last
	}
	if g.outcome.IsOver() {
		outcome := g.outcome
		state.Outcome = &outcome
	}
	state.Players.White = ClientPlayer{
		Name:     g.players[White].Name,
		Side:     White,
		TimeUsed: g.clocks[White].Used().Milliseconds(),
	}
	state.Players.Black = ClientPlayer{
		Name:     g.players[Black].Name,
		Side:     Black,
		TimeUsed: g.clocks[Black].Used().Milliseconds(),
	}
	return state
}

func (g *Game) RegisterConnection(viewerID string, conn Observer) error {
	if viewerID == "" {
		return errors.New("viewer id is required")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[viewerID]; exists {
		// Keep the existing connection and reject the new one
		g.connections.mu.Unlock()
		g.connections.sendMu.Lock()
		conn.WriteJSON(ws.NewError("connection already exists"))
		g.connections.sendMu.Unlock()
		conn.Close()
		return nil
	}
	g.connections.connections[viewerID] = conn
	g.connections.mu.Unlock()
	log.Printf("game %s: registered viewer %s", g.ID, viewerID)

	// Send initial state
	go g.broadcastState(g.GetState())
	return nil
}

// UnregisterConnection drops viewerID's connection, but only when it is still conn.
// A stale read loop must not remove a newer connection.
func (g *Game) UnregisterConnection(viewerID string, conn Observer) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[viewerID]; exists && current == conn {
		log.Printf("game %s: unregistering viewer %s", g.ID, viewerID)
		delete(g.connections.connections, viewerID)
	}
}

// ViewerCount returns the number of registered connections.
func (g *Game) ViewerCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()

	return len(g.connections.connections)
}

// SendState writes the current state to a single viewer.
func (g *Game) SendState(viewerID string) error {
	msg, err := stateMessage(g.GetState())
	if err != nil {
		return err
	}
	return g.send(viewerID, msg)
}

// SendError writes an error message to a single viewer.
func (g *Game) SendError(viewerID string, text string) error {
	return g.send(viewerID, ws.NewError(text))
}

func (g *Game) send(viewerID string, msg ws.Message) error {
	g.connections.mu.RLock()
	conn, ok := g.connections.connections[viewerID]
	g.connections.mu.RUnlock()
	if !ok {
		return fmt.Errorf("viewer %s not connected", viewerID)
	}

	g.connections.sendMu.Lock()
	defer g.connections.sendMu.Unlock()
	return conn.WriteJSON(msg)
}

func stateMessage(state GameState) (ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return ws.Message{}, fmt.Errorf("marshal state: %w", err)
	}
	return ws.Message{Type: ws.MessageTypeGameState, Payload: payload}, nil
}

func (g *Game) broadcastState(state GameState) {
	msg, err := stateMessage(state)
	if err != nil {
		log.Printf("game %s: %v", g.ID, err)
		return
	}

	// Copy the connections so writes happen without holding the map lock
	g.connections.mu.RLock()
	active := make(map[string]Observer, len(g.connections.connections))
	for viewerID, conn := range g.connections.connections {
		active[viewerID] = conn
	}
	g.connections.mu.RUnlock()

	g.connections.sendMu.Lock()
	defer g.connections.sendMu.Unlock()
	for viewerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: failed to send state to viewer %s: %v", g.ID, viewerID, err)
			g.connections.mu.Lock()
			if g.connections.connections[viewerID] == conn {
				delete(g.connections.connections, viewerID)
			}
			g.connections.mu.Unlock()
		}
	}
}
