package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidSettings is wrapped by every validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds everything a game episode is built from.
// Positions are [row, col] pairs.
type Settings struct {
	Height       int      `json:"height"`
	Width        int      `json:"width"`
	MoveEvery    int      `json:"move_every"`
	MoveCycle    int      `json:"move_cycle"`
	GrowEvery    int      `json:"grow_every"`
	InitialSpeed float64  `json:"initial_speed"`
	MaxSpeed     float64  `json:"max_speed"`
	SpeedFactor  float64  `json:"speed_factor"`
	MessageEvery int      `json:"message_every"`
	InitialSnake [][2]int `json:"initial_snake"`
	InitialFood  [2]int   `json:"initial_food"`
	Messages     []string `json:"messages"`
}

// Default returns the settings of the classic board
func Default() Settings {
	messages := make([]string, len(DefaultMessages))
	copy(messages, DefaultMessages)
	return Settings{
		Height:       StandardHeight,
		Width:        StandardWidth,
		MoveEvery:    MoveEvery,
		MoveCycle:    MoveCycle,
		GrowEvery:    GrowEvery,
		InitialSpeed: InitialSpeed,
		MaxSpeed:     MaxSpeed,
		SpeedFactor:  SpeedFactor,
		MessageEvery: MessageEvery,
		InitialSnake: [][2]int{{6, 5}, {6, 4}, {6, 3}},
		InitialFood:  [2]int{5, 10},
		Messages:     messages,
	}
}

// Load reads settings from filePath on top of the defaults.
// A missing file is not an error: the defaults are written there instead.
func Load(filePath string) (Settings, error) {
	s := Default()
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := Save(filePath, s); err != nil {
			return s, err
		}
		return s, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return s, fmt.Errorf("failed to open settings: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&s); err != nil {
		return s, fmt.Errorf("failed to decode settings %s: %w", filePath, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the settings as indented JSON
func Save(filePath string, s Settings) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}

// Validate checks that a board can be built from the settings
func (s Settings) Validate() error {
	if s.Height < 5 || s.Width < 5 {
		return fmt.Errorf("%w: board %dx%d is smaller than 5x5", ErrInvalidSettings, s.Height, s.Width)
	}
	if s.MoveCycle <= 0 || s.MoveEvery <= 0 || s.MoveEvery > s.MoveCycle {
		return fmt.Errorf("%w: move cadence %d/%d", ErrInvalidSettings, s.MoveEvery, s.MoveCycle)
	}
	if s.GrowEvery <= 0 {
		return fmt.Errorf("%w: grow_every must be positive", ErrInvalidSettings)
	}
	if s.MessageEvery <= 0 {
		return fmt.Errorf("%w: message_every must be positive", ErrInvalidSettings)
	}
	if s.InitialSpeed <= 0 || s.MaxSpeed < s.InitialSpeed || s.SpeedFactor < 1 {
		return fmt.Errorf("%w: speed %.2f max %.2f factor %.2f", ErrInvalidSettings, s.InitialSpeed, s.MaxSpeed, s.SpeedFactor)
	}
	if len(s.InitialSnake) < ScoreOffset {
		return fmt.Errorf("%w: snake needs at least %d segments", ErrInvalidSettings, ScoreOffset)
	}

	seen := make(map[[2]int]bool, len(s.InitialSnake))
	for i, p := range s.InitialSnake {
		if !s.interior(p) {
			return fmt.Errorf("%w: snake segment %v is not inside the border", ErrInvalidSettings, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: snake segment %v repeats", ErrInvalidSettings, p)
		}
		seen[p] = true
		if i > 0 && manhattan(p, s.InitialSnake[i-1]) != 1 {
			return fmt.Errorf("%w: snake segments %v and %v are not adjacent", ErrInvalidSettings, s.InitialSnake[i-1], p)
		}
	}
	if !s.interior(s.InitialFood) || seen[s.InitialFood] {
		return fmt.Errorf("%w: food %v must be on a free interior cell", ErrInvalidSettings, s.InitialFood)
	}
	return nil
}

func (s Settings) interior(p [2]int) bool {
	return p[0] > 0 && p[0] < s.Height-1 && p[1] > 0 && p[1] < s.Width-1
}

func manhattan(a, b [2]int) int {
	d := 0
	for i := range a {
		if a[i] > b[i] {
			d += a[i] - b[i]
		} else {
			d += b[i] - a[i]
		}
	}
	return d
}
