package service

import (
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/benbeisheim/pawnchess/internal/model"
)

var ErrGameNotFound = errors.New("game not found")

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) AddGame(game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[game.ID]; exists {
		return errors.New("game already exists")
	}

	gm.games[game.ID] = game
	log.Printf("registered game %s", game.ID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := make([]string, 0, len(gm.games))
	for id := range gm.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, viewerID string, conn model.Observer) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(viewerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, viewerID string, conn model.Observer) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(viewerID, conn)
}
