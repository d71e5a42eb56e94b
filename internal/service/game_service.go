package service

import (
	"fmt"

	"github.com/benbeisheim/pawnchess/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a game from the initial layout under a fresh id.
func (gs *GameService) CreateGame(whiteName, blackName string) (*model.Game, error) {
	return gs.CreateGameFromSetup(whiteName, blackName, model.Setup{Board: model.NewBoard(), ToMove: model.White})
}

func (gs *GameService) CreateGameFromSetup(whiteName, blackName string, setup model.Setup) (*model.Game, error) {
	game := model.NewGameFromSetup(uuid.New().String(), whiteName, blackName, setup)

	if err := gs.gameManager.AddGame(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (gs *GameService) GameIDs() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, viewerID string, conn model.Observer) error {
	return gs.gameManager.RegisterConnection(gameID, viewerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, viewerID string, conn model.Observer) {
	gs.gameManager.UnregisterConnection(gameID, viewerID, conn)
}

func (gs *GameService) SendState(gameID, viewerID string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.SendState(viewerID)
}

func (gs *GameService) SendError(gameID, viewerID, text string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.SendError(viewerID, text)
}
