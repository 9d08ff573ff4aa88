package tetris

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State    State
	Rows     int
	Columns  int
	Board    [][]Color
	Current  Piece
	Next     Piece
	Held     Piece
	HasHeld  bool
	Shadow   Piece
	CanHold  bool
	Score    int
	Level    int
	Lines    int
	Best     int
	NewBest  bool // The current score raised Best
	Paused   bool
	GameOver bool
}

// Snapshot captures the session state. The result shares no memory with
// the session.
func (s *Session) Snapshot() Snapshot {
	held, hasHeld := s.Held()
	return Snapshot{
		State:    s.state,
		Rows:     s.rows,
		Columns:  s.columns,
		Board:    s.board.Cells(),
		Current:  s.Current(),
		Next:     s.Next(),
		Held:     held,
		HasHeld:  hasHeld,
		Shadow:   s.Shadow(),
		CanHold:  s.canHold,
		Score:    s.score,
		Level:    s.level,
		Lines:    s.lines,
		Best:     s.best,
		NewBest:  s.record,
		Paused:   s.state == StatePaused,
		GameOver: s.state == StateGameOver,
	}
}
