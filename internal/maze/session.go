package maze

// Session is the walk state for one maze: the grid plus the player's
// current position. The grid stays immutable; all mutation lives here.
type Session struct {
	grid  *Grid
	pos   Coord
	steps int
}

// NewSession starts a walk at the grid's start cell.
func NewSession(g *Grid) *Session {
	return &Session{grid: g, pos: g.Start()}
}

// Grid returns the maze being walked.
func (s *Session) Grid() *Grid { return s.grid }

// Pos returns the player's current cell.
func (s *Session) Pos() Coord { return s.pos }

// Steps returns how many approved moves have been made since the last reset.
func (s *Session) Steps() int { return s.steps }

// Move attempts a single step in the given direction. The position changes
// only when the destination is a walkable cell; a rejected intent leaves the
// session untouched. Returns whether the move was taken.
func (s *Session) Move(d Direction) bool {
	candidate := s.pos.Step(d)
	if !s.grid.CanMoveTo(candidate) {
		return false
	}
	s.pos = candidate
	s.steps++
	return true
}

// AtGoal reports whether the player stands on the goal cell.
func (s *Session) AtGoal() bool {
	return s.pos == s.grid.Goal()
}

// Reset puts the player back on the start cell and zeroes the step count.
func (s *Session) Reset() {
	s.pos = s.grid.Start()
	s.steps = 0
}
