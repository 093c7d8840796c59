package game

// Snake is the ordered body of the player's snake, head first.
type Snake struct {
	Body []Cell
}

// newSnake lays out a snake of the given length with its head on head,
// trailing away opposite to the facing direction.
func newSnake(head Cell, length int, facing Direction) *Snake {
	back := facing.Opposite()
	body := make([]Cell, 0, length)
	c := head
	for i := 0; i < length; i++ {
		body = append(body, c)
		c = c.Translate(back)
	}
	return &Snake{Body: body}
}

// Head returns the leading cell.
func (s *Snake) Head() Cell {
	return s.Body[0]
}

// Tail returns the last cell.
func (s *Snake) Tail() Cell {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// hits reports whether moving the head onto c collides with the body.
// When the tail vacates its cell this tick, that cell does not count.
func (s *Snake) hits(c Cell, tailVacates bool) bool {
	last := len(s.Body)
	if tailVacates {
		last--
	}
	for i := 0; i < last; i++ {
		if s.Body[i] == c {
			return true
		}
	}
	return false
}

// advance prepends the new head. keepTail retains the last segment for a
// growth tick; otherwise the tail is dropped.
func (s *Snake) advance(head Cell, keepTail bool) {
	s.Body = append([]Cell{head}, s.Body...)
	if !keepTail {
		s.Body = s.Body[:len(s.Body)-1]
	}
}
