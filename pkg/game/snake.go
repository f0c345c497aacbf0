package game

// Snake is the ordered list of segments, head first and tail last
type Snake struct {
	body []Point
}

// NewSnake copies the given segments into a snake
func NewSnake(segments []Point) *Snake {
	return &Snake{body: append([]Point(nil), segments...)}
}

// Head returns the first segment
func (s *Snake) Head() Point { return s.body[0] }

// Tail returns the last segment
func (s *Snake) Tail() Point { return s.body[len(s.body)-1] }

// Len returns the number of segments
func (s *Snake) Len() int { return len(s.body) }

// PushFront adds a new head
func (s *Snake) PushFront(p Point) {
	s.body = append([]Point{p}, s.body...)
}

// PopBack removes and returns the tail
func (s *Snake) PopBack() Point {
	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	return tail
}

// Positions returns a copy of the segments
func (s *Snake) Positions() []Point {
	return append([]Point(nil), s.body...)
}

// Contains reports whether any segment is at p
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}
