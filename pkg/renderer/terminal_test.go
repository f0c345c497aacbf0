package renderer

import (
	"bytes"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trytobebee/food_run/pkg/config"
	"github.com/trytobebee/food_run/pkg/game"
)

func TestRenderBoard(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRendererTo(&out)
	g := game.NewDefaultGame()

	r.Render(g.World, g.Score, g.Turn, "dont get eaten!")

	text := out.String()
	if !strings.HasPrefix(text, "\033[H\033[2J") {
		t.Error("Frame should start by clearing the screen")
	}
	lines := strings.Split(strings.TrimPrefix(text, "\033[H\033[2J"), "\n")
	if len(lines) < 12 {
		t.Fatalf("Expected board and status lines, got %d lines", len(lines))
	}
	if got := strings.Count(lines[0], config.CharBorder); got != 15 {
		t.Errorf("Top row should be 15 border glyphs, got %d", got)
	}
	if !strings.Contains(lines[6], config.CharHead) || strings.Count(lines[6], config.CharBody) != 2 {
		t.Errorf("Row 6 should hold the snake: %q", lines[6])
	}
	if !strings.Contains(lines[5], config.CharFood) {
		t.Errorf("Row 5 should hold the food: %q", lines[5])
	}
	if lines[10] != "score: 0 - size: 3" {
		t.Errorf("Unexpected status line %q", lines[10])
	}
	if lines[11] != "dont get eaten!" {
		t.Errorf("Unexpected message line %q", lines[11])
	}
}

func TestGlyph(t *testing.T) {
	if Glyph(game.CellEmpty) != config.CharEmpty || Glyph(game.CellFood) != config.CharFood {
		t.Error("Glyph mapping is wrong")
	}
}

func TestPromptLines(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRendererTo(&out)
	r.Caught()
	r.Won()
	if !strings.Contains(out.String(), config.TextCaught) || !strings.Contains(out.String(), config.TextWon) {
		t.Errorf("Missing prompt text in %q", out.String())
	}
}

func TestWritePNG(t *testing.T) {
	g := game.NewDefaultGame()
	var buf bytes.Buffer
	if err := WritePNG(&buf, g.World, 10); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 150 || b.Dy() != 100 {
		t.Errorf("Expected 150x100 image, got %dx%d", b.Dx(), b.Dy())
	}

	// Middle of the head cell (6,5)
	r, gr, b, _ := img.At(5*10+5, 6*10+5).RGBA()
	if r>>8 < 200 || gr>>8 > 80 || b>>8 > 80 {
		t.Errorf("Head cell should be red, got %d %d %d", r>>8, gr>>8, b>>8)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	if err := SavePNG(path, game.NewDefaultGame().World, 0); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}

func BenchmarkRender(b *testing.B) {
	var out bytes.Buffer
	r := NewTerminalRendererTo(&out)
	g := game.NewDefaultGame()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.Reset()
		r.Render(g.World, g.Score, g.Turn, "")
	}
}
