package controller

import (
	"strings"

	"github.com/benbeisheim/pawnchess/internal/middleware"
	"github.com/benbeisheim/pawnchess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

// NewApp builds the read-only spectator server. origins is the list of browser
// origins allowed to connect; empty allows any.
func NewApp(gameService *service.GameService, origins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins(origins),
		AllowHeaders: "Origin, Content-Type, Accept, X-Viewer-ID",
		AllowMethods: "GET, OPTIONS",
	}))

	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Get("/ws/game/:gameId",
		middleware.EnsureViewerID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         origins,
		}),
	)

	api := app.Group("/api", middleware.EnsureViewerID())
	api.Get("/games", gameController.ListGames)
	api.Get("/game/:gameId", gameController.GetGameState)

	return app
}

func allowOrigins(origins []string) string {
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ", ")
}
