package game

// World is the bordered board. Every cell holds exactly one Cell value.
type World struct {
	height int
	width  int
	cells  [][]Cell
}

// NewWorld creates a height x width board with the border ring drawn
func NewWorld(height, width int) *World {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	w := &World{height: height, width: width, cells: cells}
	w.InitBorder()
	return w
}

// BuildWorld rebuilds a board from raw snake and food positions.
// Food under the snake is not drawn.
func BuildWorld(height, width int, snake []Point, food Point) *World {
	w := NewWorld(height, width)
	for i, p := range snake {
		if i == 0 {
			w.Set(p, CellHead)
		} else {
			w.Set(p, CellBody)
		}
	}
	if w.At(food) == CellEmpty {
		w.Set(food, CellFood)
	}
	return w
}

// InitBorder marks the outer ring as Border and clears the interior
func (w *World) InitBorder() {
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			if r == 0 || r == w.height-1 || c == 0 || c == w.width-1 {
				w.cells[r][c] = CellBorder
			} else {
				w.cells[r][c] = CellEmpty
			}
		}
	}
}

// Height returns the number of rows
func (w *World) Height() int { return w.height }

// Width returns the number of columns
func (w *World) Width() int { return w.width }

// InBounds reports whether p lies on the board
func (w *World) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < w.height && p.Col >= 0 && p.Col < w.width
}

// At returns the cell at p. Positions off the board read as Border.
func (w *World) At(p Point) Cell {
	if !w.InBounds(p) {
		return CellBorder
	}
	return w.cells[p.Row][p.Col]
}

// Set changes the cell at p. Border cells and positions off the board are left alone.
func (w *World) Set(p Point, c Cell) {
	if !w.InBounds(p) || w.cells[p.Row][p.Col] == CellBorder {
		return
	}
	w.cells[p.Row][p.Col] = c
}

// Rows returns a copy of the board, row by row
func (w *World) Rows() [][]Cell {
	rows := make([][]Cell, w.height)
	for i, row := range w.cells {
		rows[i] = append([]Cell(nil), row...)
	}
	return rows
}

// Count returns how many cells hold c
func (w *World) Count(c Cell) int {
	n := 0
	for _, row := range w.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}
