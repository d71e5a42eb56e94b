package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/benbeisheim/pawnchess/internal/service"
	"github.com/benbeisheim/pawnchess/internal/ws"
	"github.com/gofiber/websocket/v2"
)

var errSpectatorMove = errors.New("spectators cannot move; play happens at the console")

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	viewerID, _ := c.Locals("viewerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, viewerID, c); err != nil {
		log.Printf("failed to register connection: %v", err)
		c.WriteJSON(ws.NewError(err.Error()))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, viewerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, viewerID, msg); err != nil {
			log.Printf("handle error: %v", err)
			if sendErr := wsc.gameService.SendError(gameID, viewerID, err.Error()); sendErr != nil {
				log.Printf("send error: %v", sendErr)
			}
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID, viewerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypePing:
		return wsc.gameService.SendState(gameID, viewerID)
	case ws.MessageTypeMove:
		return errSpectatorMove
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
