package maze

import "testing"

func TestSession_StartsAtStartCell(t *testing.T) {
	g, err := GenerateSeeded(5, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(g)
	if s.Pos() != g.Start() {
		t.Fatalf("new session at %v, want %v", s.Pos(), g.Start())
	}
	if s.Steps() != 0 {
		t.Fatalf("new session has %d steps", s.Steps())
	}
}

func TestSession_RejectedMoveLeavesStateUntouched(t *testing.T) {
	g := gridFromRows(t, []string{
		"#####",
		"#.###",
		"#.###",
		"#..##",
		"#####",
	})
	s := NewSession(g)

	// From (1,1) the only carved neighbor is down; up, left and right all
	// face walls (or the border) and must be rejected without moving.
	for _, d := range []Direction{DirUp, DirLeft, DirRight} {
		if s.Move(d) {
			t.Fatalf("move %v from start should be rejected", d)
		}
		if s.Pos() != g.Start() {
			t.Fatalf("rejected move %v changed position to %v", d, s.Pos())
		}
		if s.Steps() != 0 {
			t.Fatalf("rejected move %v counted as a step", d)
		}
	}

	if !s.Move(DirDown) {
		t.Fatal("move down from start should be approved")
	}
	if s.Pos() != (Coord{X: 1, Y: 2}) {
		t.Fatalf("after one step down, position is %v", s.Pos())
	}
	if s.Steps() != 1 {
		t.Fatalf("one approved move should count one step, got %d", s.Steps())
	}
}

func TestSession_Reset(t *testing.T) {
	g, err := GenerateSeeded(5, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(g)
	for d := DirUp; d < directionCount; d++ {
		if s.Move(d) {
			break
		}
	}
	if s.Pos() == g.Start() {
		t.Fatal("expected at least one approved move from the start cell")
	}
	s.Reset()
	if s.Pos() != g.Start() || s.Steps() != 0 {
		t.Fatalf("reset left session at %v with %d steps", s.Pos(), s.Steps())
	}
}

// walkToGoal drives a session to the goal with depth-first exploration,
// using only guard-approved moves. Returns the number of session moves
// consumed, or -1 if the goal was never reached within the bound.
func walkToGoal(s *Session, maxMoves int) int {
	type frame struct {
		pos  Coord
		next Direction
	}
	visited := map[Coord]bool{s.Pos(): true}
	trail := []frame{{pos: s.Pos()}}
	moves := 0

	for len(trail) > 0 && moves < maxMoves {
		if s.AtGoal() {
			return moves
		}
		top := &trail[len(trail)-1]
		advanced := false
		for top.next < directionCount {
			d := top.next
			top.next++
			candidate := s.Pos().Step(d)
			if visited[candidate] || !s.Move(d) {
				continue
			}
			moves++
			visited[candidate] = true
			trail = append(trail, frame{pos: candidate})
			advanced = true
			break
		}
		if advanced {
			continue
		}
		// Dead end: walk back to the previous frame.
		trail = trail[:len(trail)-1]
		if len(trail) > 0 {
			back := trail[len(trail)-1].pos
			cur := s.Pos()
			for d := DirUp; d < directionCount; d++ {
				if cur.Step(d) == back {
					if !s.Move(d) {
						return -1
					}
					moves++
					break
				}
			}
		}
	}
	if s.AtGoal() {
		return moves
	}
	return -1
}

func TestSession_GuardApprovedWalkReachesGoal(t *testing.T) {
	// End to end on a small maze: start (1,1), goal (3,3). Exploring with
	// only approved single steps must arrive within the path-cell bound
	// (each cell entered at most once forward and once backtracking).
	for seed := int64(0); seed < 25; seed++ {
		g, err := GenerateSeeded(5, 5, seed)
		if err != nil {
			t.Fatal(err)
		}
		s := NewSession(g)
		bound := 2 * g.PathCells()
		moves := walkToGoal(s, bound)
		if moves < 0 {
			t.Fatalf("seed %d: goal not reached within %d moves", seed, bound)
		}
		if !s.AtGoal() {
			t.Fatalf("seed %d: walk ended off-goal at %v", seed, s.Pos())
		}
		if s.Pos() != (Coord{X: 3, Y: 3}) {
			t.Fatalf("seed %d: goal of a 5x5 maze should be (3,3), got %v", seed, s.Pos())
		}
	}
}

func TestSession_GoalReachableOnLargerMazes(t *testing.T) {
	for _, d := range testDimensions {
		g, err := GenerateSeeded(d[0], d[1], 99)
		if err != nil {
			t.Fatal(err)
		}
		s := NewSession(g)
		if walkToGoal(s, 2*g.PathCells()) < 0 {
			t.Fatalf("%dx%d: goal unreachable by guard-approved walk", d[0], d[1])
		}
	}
}
