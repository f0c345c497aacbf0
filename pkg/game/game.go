package game

import (
	"fmt"
	"math"
	"time"

	"github.com/trytobebee/food_run/pkg/config"
)

// Game is one episode. It is owned by a single loop and mutated in place by Tick.
type Game struct {
	Settings config.Settings
	World    *World
	Snake    *Snake
	Food     Point
	Turn     int
	Speed    float64 // Turns per second
	Score    int
	Dead     bool
	Stuck    bool
	Message  string

	StartTime time.Time
	EndTime   time.Time

	messages MessagePicker
}

// NewGame builds a fresh episode from the settings.
// A nil picker falls back to a randomly seeded RandomPicker over s.Messages.
func NewGame(s config.Settings, picker MessagePicker) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if picker == nil {
		picker = NewRandomPicker(s.Messages, uint64(time.Now().UnixNano()))
	}

	segments := make([]Point, len(s.InitialSnake))
	for i, p := range s.InitialSnake {
		segments[i] = Point{Row: p[0], Col: p[1]}
	}
	food := Point{Row: s.InitialFood[0], Col: s.InitialFood[1]}

	g := &Game{
		Settings:  s,
		World:     BuildWorld(s.Height, s.Width, segments, food),
		Snake:     NewSnake(segments),
		Food:      food,
		Speed:     s.InitialSpeed,
		StartTime: time.Now(),
		messages:  picker,
	}
	g.Score = g.Snake.Len() - config.ScoreOffset
	return g, nil
}

// NewDefaultGame builds an episode on the classic board
func NewDefaultGame() *Game {
	g, err := NewGame(config.Default(), nil)
	if err != nil {
		panic(fmt.Sprintf("default settings rejected: %v", err))
	}
	return g
}

// Over reports whether the episode has ended
func (g *Game) Over() bool {
	return g.Dead || g.Stuck
}

// Outcome returns the current state of the episode
func (g *Game) Outcome() Outcome {
	switch {
	case g.Stuck:
		return OutcomeStuck
	case g.Dead:
		return OutcomeCaught
	}
	return OutcomeRunning
}

// Timeout is how long the next tick waits for the player
func (g *Game) Timeout() time.Duration {
	return time.Duration(float64(time.Second) / g.Speed)
}

// Moving reports whether the snake advances on the given turn
func (g *Game) Moving(turn int) bool {
	return turn%g.Settings.MoveCycle < g.Settings.MoveEvery
}

// Growing reports whether the given turn is a growth tick
func (g *Game) Growing(turn int) bool {
	return turn%g.Settings.GrowEvery == 0
}

// Tick advances the game by one turn with the player's direction for this turn
func (g *Game) Tick(dir Direction) Outcome {
	if g.Over() {
		return g.Outcome()
	}

	// The tail only counts as free when it is about to move away
	turn := g.Turn + 1
	nextHead, ok := NextHead(g.World, g.Snake, g.Food, g.Moving(turn) && g.Growing(turn))
	if !ok {
		g.Stuck = true
		g.EndTime = time.Now()
		return OutcomeStuck
	}

	g.Turn = turn
	g.World.Set(g.Food, CellEmpty)

	if g.Moving(g.Turn) {
		g.World.Set(g.Snake.Head(), CellBody)
		g.Snake.PushFront(nextHead)
		if !g.Growing(g.Turn) {
			g.Speed = math.Min(g.Speed*g.Settings.SpeedFactor, g.Settings.MaxSpeed)
			tail := g.Snake.PopBack()
			g.World.Set(tail, CellEmpty)
		}
		g.World.Set(nextHead, CellHead)
	}

	res := ResolveFood(g.World, g.Food, dir)
	g.Food = res.Pos
	if res.Dead {
		g.Dead = true
		g.EndTime = time.Now()
	}

	g.Score = g.Snake.Len() - config.ScoreOffset
	if g.Turn%g.Settings.MessageEvery == 0 {
		g.Message = g.messages.Choose()
	}
	return g.Outcome()
}
