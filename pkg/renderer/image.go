package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/trytobebee/food_run/pkg/game"
)

// DefaultBlockSize is the side of one cell in pixels
const DefaultBlockSize = 24

type rgb struct{ r, g, b float64 }

var cellColors = map[game.Cell]rgb{
	game.CellEmpty:  {1, 1, 1},
	game.CellBorder: {0.85, 0.85, 0.85},
	game.CellBody:   {0.30, 0.75, 0.35},
	game.CellHead:   {0.85, 0.20, 0.20},
	game.CellFood:   {0.95, 0.55, 0.10},
}

// DrawBoard paints the world into an image, one square per cell
func DrawBoard(w *game.World, blockSize int) image.Image {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	dc := gg.NewContext(w.Width()*blockSize, w.Height()*blockSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	bs := float64(blockSize)
	for r, row := range w.Rows() {
		for c, cell := range row {
			x, y := float64(c)*bs, float64(r)*bs
			col := cellColors[cell]
			dc.SetRGB(col.r, col.g, col.b)
			if cell == game.CellFood {
				dc.DrawCircle(x+bs/2, y+bs/2, bs/2-1)
			} else {
				dc.DrawRectangle(x, y, bs, bs)
			}
			dc.Fill()
		}
	}

	// Grid lines
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.SetLineWidth(1)
	for c := 0; c <= w.Width(); c++ {
		dc.DrawLine(float64(c)*bs, 0, float64(c)*bs, float64(w.Height())*bs)
	}
	for r := 0; r <= w.Height(); r++ {
		dc.DrawLine(0, float64(r)*bs, float64(w.Width())*bs, float64(r)*bs)
	}
	dc.Stroke()

	return dc.Image()
}

// WritePNG encodes the board as PNG
func WritePNG(out io.Writer, w *game.World, blockSize int) error {
	if err := png.Encode(out, DrawBoard(w, blockSize)); err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	return nil
}

// SavePNG writes the board to a PNG file
func SavePNG(path string, w *game.World, blockSize int) error {
	if err := gg.SavePNG(path, DrawBoard(w, blockSize)); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
