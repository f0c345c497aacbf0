package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/trytobebee/food_run/pkg/config"
	"github.com/trytobebee/food_run/pkg/game"
)

// ServerMessage is everything the server pushes to the browser
type ServerMessage struct {
	Type      string           `json:"type"` // "config", "state" or "over"
	SessionID string           `json:"sessionId,omitempty"`
	Config    *game.GameConfig `json:"config,omitempty"`
	State     *game.State      `json:"state,omitempty"`
	Text      string           `json:"text,omitempty"`
}

// ClientMessage is a key press from the browser
type ClientMessage struct {
	Action string `json:"action"`
}

// GameServer runs one player's games over a WebSocket
type GameServer struct {
	id      string
	srv     *Server
	conn    *websocket.Conn
	actions chan game.Direction
	episode int

	writeMu sync.Mutex

	mu   sync.Mutex // guards game
	game *game.Game
}

func newGameServer(srv *Server, conn *websocket.Conn) (*GameServer, error) {
	g, err := game.NewGame(srv.settings, nil)
	if err != nil {
		return nil, err
	}
	return &GameServer{
		id:      uuid.NewString(),
		srv:     srv,
		conn:    conn,
		actions: make(chan game.Direction),
		episode: 1,
		game:    g,
	}, nil
}

func (gs *GameServer) safeWriteJSON(v interface{}) error {
	gs.writeMu.Lock()
	defer gs.writeMu.Unlock()
	return gs.conn.WriteJSON(v)
}

func (gs *GameServer) sendState(msgType, text string) error {
	gs.mu.Lock()
	state := gs.game.Snapshot()
	gs.mu.Unlock()
	return gs.safeWriteJSON(ServerMessage{Type: msgType, State: &state, Text: text})
}

// readLoop forwards directions from the browser to the game loop
func (gs *GameServer) readLoop(ctx context.Context) error {
	for {
		var msg ClientMessage
		if err := gs.conn.ReadJSON(&msg); err != nil {
			return err
		}
		dir, ok := game.ParseDirection(msg.Action)
		if !ok {
			continue
		}
		select {
		case gs.actions <- dir:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// waitAction returns the next direction or DirNone after timeout
func (gs *GameServer) waitAction(ctx context.Context, timeout time.Duration) (game.Direction, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case dir := <-gs.actions:
		return dir, true, nil
	case <-timer.C:
		return game.DirNone, false, nil
	case <-ctx.Done():
		return game.DirNone, false, ctx.Err()
	}
}

func (gs *GameServer) finish(ctx context.Context) {
	if gs.srv.board == nil {
		return
	}
	gs.mu.Lock()
	run := game.RunFromGame("web", gs.id, gs.game)
	gs.mu.Unlock()
	if _, err := gs.srv.board.RecordRun(ctx, run); err != nil {
		log.Printf("Failed to save run for %s: %v", gs.id, err)
	}
}

// gameLoop ticks the game at its own speed until the player stops playing
func (gs *GameServer) gameLoop(ctx context.Context) error {
	gs.mu.Lock()
	cfg := gs.game.GetGameConfig()
	gs.mu.Unlock()
	if err := gs.safeWriteJSON(ServerMessage{Type: "config", SessionID: gs.id, Config: &cfg}); err != nil {
		return err
	}
	if err := gs.sendState("state", ""); err != nil {
		return err
	}

	for {
		gs.mu.Lock()
		timeout := gs.game.Timeout()
		gs.mu.Unlock()

		dir, _, err := gs.waitAction(ctx, timeout)
		if err != nil {
			return err
		}

		gs.mu.Lock()
		out := gs.game.Tick(dir)
		gs.mu.Unlock()

		switch out {
		case game.OutcomeStuck:
			gs.finish(ctx)
			return gs.sendState("over", config.TextWon)
		case game.OutcomeCaught:
			gs.finish(ctx)
			if err := gs.sendState("over", config.TextCaught); err != nil {
				return err
			}
			again, err := gs.waitRestart(ctx)
			if err != nil || !again {
				return err
			}
			if err := gs.restart(); err != nil {
				return err
			}
		default:
			if err := gs.sendState("state", ""); err != nil {
				return err
			}
		}
	}
}

// waitRestart swallows held keys, then gives the player a window to play again
func (gs *GameServer) waitRestart(ctx context.Context) (bool, error) {
	deadline := time.After(gs.srv.restartDelay)
	for {
		select {
		case <-gs.actions:
		case <-deadline:
			_, ok, err := gs.waitAction(ctx, gs.srv.restartWait)
			return ok, err
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

func (gs *GameServer) restart() error {
	g, err := game.NewGame(gs.srv.settings, nil)
	if err != nil {
		return err
	}
	gs.mu.Lock()
	gs.game = g
	gs.episode++
	episode := gs.episode
	gs.mu.Unlock()
	log.Printf("Session %s starting round %d", gs.id, episode)
	return gs.sendState("state", "")
}
