package game

// State is a snapshot of the current game for client synchronization
type State struct {
	Snake   []Point    `json:"snake"`
	Food    Point      `json:"food"`
	Turn    int        `json:"turn"`
	Score   int        `json:"score"`
	Size    int        `json:"size"`
	Speed   float64    `json:"speed"`
	Dead    bool       `json:"dead"`
	Stuck   bool       `json:"stuck"`
	Outcome string     `json:"outcome"`
	Message string     `json:"message,omitempty"`
	Cells   [][]string `json:"cells"`
}

// GameConfig is a DTO for game settings sent to client on connect
type GameConfig struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	GrowEvery int `json:"growEvery"`
}

// Snapshot returns a copy of the current game state for serialization
func (g *Game) Snapshot() State {
	rows := g.World.Rows()
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			cells[r][c] = cell.String()
		}
	}

	return State{
		Snake:   g.Snake.Positions(),
		Food:    g.Food,
		Turn:    g.Turn,
		Score:   g.Score,
		Size:    g.Snake.Len(),
		Speed:   g.Speed,
		Dead:    g.Dead,
		Stuck:   g.Stuck,
		Outcome: g.Outcome().String(),
		Message: g.Message,
		Cells:   cells,
	}
}

// GetGameConfig returns the board configuration
func (g *Game) GetGameConfig() GameConfig {
	return GameConfig{
		Width:     g.Settings.Width,
		Height:    g.Settings.Height,
		GrowEvery: g.Settings.GrowEvery,
	}
}
