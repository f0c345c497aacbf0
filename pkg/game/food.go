package game

// FoodResolution is where the food ends up after a tick and whether it was eaten
type FoodResolution struct {
	Pos  Point
	Dead bool
}

// ResolveFood moves the food one step in dir when the target is empty and
// decides whether the snake got it. Death is checked on the target cell
// (only the head kills there) and again on the final cell, because the
// snake may have moved onto the food's unmoved position this tick.
// The world is stamped with Food unless the food died.
func ResolveFood(w *World, food Point, dir Direction) FoodResolution {
	res := FoodResolution{Pos: food}

	candidate := food.Add(dir.Vector())
	switch w.At(candidate) {
	case CellHead:
		res.Dead = true
	case CellEmpty:
		res.Pos = candidate
	}

	if c := w.At(res.Pos); c == CellBody || c == CellHead {
		res.Dead = true
	}
	if !res.Dead {
		w.Set(res.Pos, CellFood)
	}
	return res
}
