package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/benbeisheim/pawnchess/internal/console"
	"github.com/benbeisheim/pawnchess/internal/controller"
	"github.com/benbeisheim/pawnchess/internal/service"
)

func main() {
	// Flags (env fallbacks). An empty spectate address keeps the game offline.
	spectate := flag.String("spectate", getenv("PAWNS_SPECTATE_ADDR", ""), "listen address of the read-only spectator feed, e.g. :3000")
	origins := flag.String("origins", getenv("PAWNS_ALLOWED_ORIGINS", ""), "comma-separated origins allowed to watch (default: any)")
	flag.Parse()

	log.SetOutput(os.Stderr)

	gameService := service.NewGameService(service.NewGameManager())
	term := console.NewConsole(os.Stdin, os.Stdout)

	white, black, ok := term.ReadNames()
	if !ok {
		fmt.Println("Bye!")
		return
	}

	game, err := gameService.CreateGame(white, black)
	if err != nil {
		log.Fatalf("create game: %v", err)
	}

	if *spectate != "" {
		app := controller.NewApp(gameService, parseCSV(*origins))
		go func() {
			if err := app.Listen(*spectate); err != nil {
				log.Printf("spectator server: %v", err)
			}
		}()
		log.Printf("spectators: GET %s/api/game/%s or ws %s/ws/game/%s", *spectate, game.ID, *spectate, game.ID)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(ctx); err != nil {
				log.Printf("spectator shutdown: %v", err)
			}
		}()
	}

	term.Play(game)
}

func parseCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
