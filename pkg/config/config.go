package config

import "time"

// Game board dimensions
const (
	StandardHeight = 10
	StandardWidth  = 15
)

// Snake cadence settings
const (
	MoveEvery    = 1 // N1: the snake moves MoveEvery out of MoveCycle turns
	MoveCycle    = 2 // N2
	GrowEvery    = 9 // M: growth tick when turn % GrowEvery == 0
	ScoreOffset  = 3 // Initial snake length, subtracted from the length for the score
	MessageEvery = 50
)

// Speed settings (turns per second)
const (
	InitialSpeed = 3.0
	MaxSpeed     = 6.0
	SpeedFactor  = 1.05
)

// Restart flow timing
const (
	RestartDelay = 1 * time.Second // Swallow held keys after being caught
	RestartWait  = 5 * time.Second // Time the player has to ask for another round
)

// Emoji characters for rendering
const (
	CharEmpty  = "　" // Full-width space to match emoji width
	CharBorder = "⬜️"
	CharBody   = "🟩"
	CharHead   = "🟥"
	CharFood   = "🍎"
)

// Player facing text
const (
	TextInstructions = "use arrow keys or WASD to move!"
	TextRole         = "this time, youre the food 😱"
	TextTerminalHint = "I recommend expanding the terminal window\nso the game has enough space to run"
	TextCaught       = "you were eaten by snek! :("
	TextTryAgain     = "use arrow keys or WASD to try again!"
	TextWon          = "woah you woncd Snek how did you do it?!"
)

// DefaultMessages are the encouragements shown every MessageEvery turns
var DefaultMessages = []string{
	"you can do it!",
	"dont get eaten!",
	"run, forest, run!",
	"where theres a will, theres a way",
	"you can beat it!",
	"outsmart the snake!",
}
