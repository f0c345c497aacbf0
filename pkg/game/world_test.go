package game

import "testing"

func TestWorldBorder(t *testing.T) {
	w := NewWorld(10, 15)

	for r := 0; r < 10; r++ {
		for c := 0; c < 15; c++ {
			edge := r == 0 || r == 9 || c == 0 || c == 14
			got := w.At(Point{r, c})
			if edge && got != CellBorder || !edge && got != CellEmpty {
				t.Fatalf("Cell (%d,%d) is %v", r, c, got)
			}
		}
	}
}

func TestWorldBorderIsImmutable(t *testing.T) {
	w := NewWorld(5, 5)
	w.Set(Point{0, 2}, CellHead)
	if w.At(Point{0, 2}) != CellBorder {
		t.Error("Border must not be overwritten")
	}
	w.Set(Point{2, 2}, CellBody)
	if w.At(Point{2, 2}) != CellBody {
		t.Error("Interior cells should be writable")
	}
}

func TestWorldOutOfBounds(t *testing.T) {
	w := NewWorld(5, 5)
	for _, p := range []Point{{-1, 2}, {2, -1}, {5, 2}, {2, 5}} {
		if w.InBounds(p) {
			t.Errorf("%v should be out of bounds", p)
		}
		if w.At(p) != CellBorder {
			t.Errorf("%v should read as border", p)
		}
		w.Set(p, CellFood) // must not panic
	}
}

func TestWorldRowsIsACopy(t *testing.T) {
	w := NewWorld(5, 5)
	rows := w.Rows()
	rows[2][2] = CellFood
	if w.At(Point{2, 2}) != CellEmpty {
		t.Error("Rows should not alias the world")
	}
}

func TestSnakeDeque(t *testing.T) {
	s := NewSnake([]Point{{6, 5}, {6, 4}, {6, 3}})
	s.PushFront(Point{6, 6})
	if s.Head() != (Point{6, 6}) || s.Len() != 4 {
		t.Fatalf("PushFront failed: head %v len %d", s.Head(), s.Len())
	}
	if tail := s.PopBack(); tail != (Point{6, 3}) {
		t.Errorf("Expected tail (6,3), got %v", tail)
	}
	if s.Tail() != (Point{6, 4}) {
		t.Errorf("Expected new tail (6,4), got %v", s.Tail())
	}
	if !s.Contains(Point{6, 5}) || s.Contains(Point{6, 3}) {
		t.Error("Contains is wrong after pop")
	}

	positions := s.Positions()
	positions[0] = Point{}
	if s.Head() != (Point{6, 6}) {
		t.Error("Positions should return a copy")
	}
}

func TestResolveFood(t *testing.T) {
	tests := []struct {
		name    string
		cell    Cell // what sits above the food
		dir     Direction
		wantPos Point
		dead    bool
	}{
		{"no input", CellEmpty, DirNone, Point{4, 4}, false},
		{"into empty", CellEmpty, DirUp, Point{3, 4}, false},
		{"into body", CellBody, DirUp, Point{4, 4}, false},
		{"into head", CellHead, DirUp, Point{4, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(10, 10)
			w.Set(Point{3, 4}, tt.cell)

			res := ResolveFood(w, Point{4, 4}, tt.dir)
			if res.Pos != tt.wantPos || res.Dead != tt.dead {
				t.Errorf("Got %+v, want pos %v dead %v", res, tt.wantPos, tt.dead)
			}
			if want := !tt.dead; (w.At(res.Pos) == CellFood) != want {
				t.Errorf("Food stamp mismatch, cell is %v", w.At(res.Pos))
			}
		})
	}
}

func TestResolveFoodOverlap(t *testing.T) {
	for _, c := range []Cell{CellBody, CellHead} {
		w := NewWorld(10, 10)
		w.Set(Point{4, 4}, c)
		w.Set(Point{3, 4}, CellBody)

		res := ResolveFood(w, Point{4, 4}, DirUp)
		if !res.Dead {
			t.Errorf("Food sitting on %v should die", c)
		}
		if w.At(Point{4, 4}) != c {
			t.Errorf("Dead food must not be stamped over %v", c)
		}
	}
}
