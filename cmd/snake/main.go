package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/trytobebee/food_run/pkg/config"
	"github.com/trytobebee/food_run/pkg/game"
	"github.com/trytobebee/food_run/pkg/input"
	"github.com/trytobebee/food_run/pkg/renderer"
)

func main() {
	configPath := flag.String("config", "", "settings file (JSON), reloaded between rounds")
	recordDir := flag.String("record", "", "directory for JSONL recordings, empty disables recording")
	dbPath := flag.String("db", "data/game.db", "leaderboard database, empty disables it")
	name := flag.String("name", os.Getenv("USER"), "name on the leaderboard")
	flag.Parse()

	if err := run(*configPath, *recordDir, *dbPath, *name); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath, recordDir, dbPath, name string) error {
	settings := config.Default()
	var watcher *config.Watcher
	if configPath != "" {
		var err error
		if settings, err = config.Load(configPath); err != nil {
			return err
		}
		if watcher, err = config.Watch(configPath); err != nil {
			return err
		}
		defer watcher.Close()
	}

	sessionID := uuid.NewString()

	var recorder *game.GameRecorder
	if recordDir != "" {
		var err error
		if recorder, err = game.NewRecorder(recordDir, sessionID); err != nil {
			return err
		}
		defer recorder.Close()
	}

	var board *game.Leaderboard
	if dbPath != "" {
		var err error
		if board, err = game.OpenLeaderboard(dbPath); err != nil {
			return err
		}
		defer board.Close()
	}

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	g, err := game.NewGame(settings, nil)
	if err != nil {
		return err
	}
	episode := 1

	// Record the finished round on the leaderboard
	finish := func() {
		if board == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := board.RecordRun(ctx, game.RunFromGame(name, sessionID, g)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save run: %v\n", err)
		}
	}

	render.Render(g.World, g.Score, g.Turn, g.Message)
	render.Intro()

	for {
		if g.Dead {
			finish()
			render.Caught()
			// Give a player still holding a key a moment to let go
			time.Sleep(config.RestartDelay)
			inputHandler.Drain()

			dir, in, ok := inputHandler.PollDirection(config.RestartWait)
			if !ok || dir == game.DirNone || input.IsQuit(in) {
				return nil
			}

			if watcher != nil {
				select {
				case s := <-watcher.Updates():
					settings = s
				default:
				}
			}
			if g, err = game.NewGame(settings, nil); err != nil {
				return err
			}
			episode++
			render.Render(g.World, g.Score, g.Turn, g.Message)
		}

		dir, in, ok := inputHandler.PollDirection(g.Timeout())
		if ok && input.IsQuit(in) {
			render.Lines("", "  Thanks for playing! 👋")
			return nil
		}

		out := g.Tick(dir)
		if recorder != nil {
			recorder.RecordStep(game.NewStepRecord(sessionID, episode, g, dir))
		}
		if out == game.OutcomeStuck {
			break
		}
		render.Render(g.World, g.Score, g.Turn, g.Message)
	}

	finish()
	render.Won()
	return nil
}
