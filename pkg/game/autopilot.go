package game

// preferredMoves lists the chase direction along the dominant axis followed
// by every direction in canonical order. The row axis only wins when it is
// strictly longer.
func preferredMoves(head, food Point) []Direction {
	dy := food.Row - head.Row
	dx := food.Col - head.Col

	moves := make([]Direction, 0, 1+len(Directions))
	if abs(dy) > abs(dx) {
		if dy <= 0 {
			moves = append(moves, DirUp)
		} else {
			moves = append(moves, DirDown)
		}
	} else {
		if dx >= 0 {
			moves = append(moves, DirRight)
		} else {
			moves = append(moves, DirLeft)
		}
	}
	return append(moves, Directions[:]...)
}

// NextHead picks where the snake's head goes this tick.
// growing tells whether the tail stays in place this tick, in which case
// the tail cell is as solid as the rest of the body.
// It returns false when every direction is blocked.
func NextHead(w *World, snake *Snake, food Point, growing bool) (Point, bool) {
	head := snake.Head()
	for _, dir := range preferredMoves(head, food) {
		next := head.Add(dir.Vector())
		switch w.At(next) {
		case CellBorder:
			continue
		case CellBody:
			if next == snake.Tail() && !growing {
				return next, true
			}
		default:
			return next, true
		}
	}
	return Point{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
