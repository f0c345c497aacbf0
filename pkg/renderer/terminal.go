package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trytobebee/food_run/pkg/config"
	"github.com/trytobebee/food_run/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	buffer strings.Builder
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return NewTerminalRendererTo(os.Stdout)
}

// NewTerminalRendererTo creates a renderer writing to out
func NewTerminalRendererTo(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Glyph returns the emoji drawn for a cell
func Glyph(c game.Cell) string {
	switch c {
	case game.CellBorder:
		return config.CharBorder
	case game.CellBody:
		return config.CharBody
	case game.CellHead:
		return config.CharHead
	case game.CellFood:
		return config.CharFood
	}
	return config.CharEmpty
}

// Render draws the board and status lines. The screen is cleared first.
func (r *TerminalRenderer) Render(w *game.World, score, turn int, message string) {
	r.buffer.Reset()
	// Home and clear
	r.buffer.WriteString("\033[H\033[2J")

	for _, row := range w.Rows() {
		for _, cell := range row {
			r.buffer.WriteString(Glyph(cell))
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString(fmt.Sprintf("score: %d - size: %d\n", turn, score+config.ScoreOffset))
	if message != "" {
		r.buffer.WriteString(message + "\n")
	}

	fmt.Fprint(r.out, r.buffer.String())
}

// Intro prints the instructions under the first frame
func (r *TerminalRenderer) Intro() {
	r.Lines(config.TextInstructions, config.TextRole+"\n", config.TextTerminalHint)
}

// Caught prints the restart prompt
func (r *TerminalRenderer) Caught() {
	r.Lines(config.TextCaught, config.TextTryAgain)
}

// Won prints the victory line
func (r *TerminalRenderer) Won() {
	r.Lines(config.TextWon)
}

// Lines prints each line below the board
func (r *TerminalRenderer) Lines(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(r.out, l)
	}
}
