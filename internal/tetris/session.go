package tetris

import "time"

// State is the phase of the grid state machine.
type State int

const (
	StateFalling State = iota
	StateLocking
	StateLineClear
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateLineClear:
		return "line_clear"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a discrete player input.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdHardDrop
	CmdHold
	CmdPause
	CmdReset
	CmdQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdRotate:
		return "rotate"
	case CmdHardDrop:
		return "hard_drop"
	case CmdHold:
		return "hold"
	case CmdPause:
		return "pause"
	case CmdReset:
		return "reset"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome describes what a command or tick did.
type Outcome struct {
	Changed  bool // Piece, board or flags changed
	Locked   bool // A piece was merged into the board
	Cleared  int  // Rows removed by the lock
	Dropped  int  // Rows descended by a hard drop
	GameOver bool // The session entered GameOver during this call
}

func (o *Outcome) merge(other Outcome) {
	o.Changed = o.Changed || other.Changed
	o.Locked = o.Locked || other.Locked
	o.Cleared += other.Cleared
	o.Dropped += other.Dropped
	o.GameOver = o.GameOver || other.GameOver
}

// Options configures a new session.
type Options struct {
	Rows      int
	Columns   int
	Rules     Rules
	Generator Generator
	HighScore int // Best score loaded from persistence
}

// Session is one game: the board, the active, next and held pieces, and
// the score. A session is owned by a single driver and is not safe for
// concurrent use.
type Session struct {
	rows    int
	columns int
	rules   Rules
	gen     Generator

	board   *Board
	current Piece
	next    Piece
	held    *Piece
	canHold bool

	state  State
	score  int
	level  int
	lines  int
	best   int
	record bool // best was raised by this session's score

	fallElapsed time.Duration
}

// NewSession creates a session in the Falling state. Zero-valued options
// fall back to the reference board size, default rules and a time-seeded
// generator.
func NewSession(opts Options) *Session {
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}
	if opts.Rules.StartLevel < 1 {
		opts.Rules.StartLevel = 1
	}
	if opts.Rules.LinesPerLevel <= 0 {
		opts.Rules.LinesPerLevel = DefaultRules().LinesPerLevel
	}
	if opts.Generator == nil {
		opts.Generator = NewRandomGenerator(time.Now().UnixNano())
	}

	s := &Session{
		rows:    opts.Rows,
		columns: opts.Columns,
		rules:   opts.Rules,
		gen:     opts.Generator,
		best:    opts.HighScore,
	}
	s.Reset()
	return s
}

// Reset discards the current game and starts a fresh one. The best score
// carries over.
func (s *Session) Reset() {
	s.board = NewBoard(s.rows, s.columns)
	s.current = s.spawn()
	s.next = s.spawn()
	s.held = nil
	s.canHold = true
	s.score = 0
	s.level = s.rules.StartLevel
	s.lines = 0
	s.record = false
	s.fallElapsed = 0
	s.state = StateFalling
}

func (s *Session) spawn() Piece {
	d := s.gen.Next()
	return NewPiece(d.Kind, d.Color, s.columns)
}

// Apply executes one command.
func (s *Session) Apply(cmd Command) Outcome {
	switch cmd {
	case CmdReset:
		s.Reset()
		return Outcome{Changed: true}
	case CmdQuit:
		s.Finalize()
		return Outcome{}
	case CmdPause:
		return s.togglePause()
	}

	if s.state != StateFalling {
		return Outcome{}
	}

	switch cmd {
	case CmdMoveLeft:
		return s.shift(-1, 0)
	case CmdMoveRight:
		return s.shift(1, 0)
	case CmdSoftDrop:
		return s.shift(0, 1)
	case CmdRotate:
		return s.rotate()
	case CmdHardDrop:
		return s.hardDrop()
	case CmdHold:
		return s.hold()
	}
	return Outcome{}
}

// Tick advances gravity by elapsed. Once the accumulated time exceeds the
// level's fall interval the piece moves down one row, locking if it can't.
func (s *Session) Tick(elapsed time.Duration) Outcome {
	if s.state != StateFalling {
		return Outcome{}
	}
	s.fallElapsed += elapsed
	if s.fallElapsed <= s.rules.FallInterval(s.level) {
		return Outcome{}
	}
	s.fallElapsed = 0
	return s.gravity()
}

// Step applies a frame's commands in order and then advances gravity.
func (s *Session) Step(cmds []Command, elapsed time.Duration) Outcome {
	var out Outcome
	for _, cmd := range cmds {
		out.merge(s.Apply(cmd))
	}
	out.merge(s.Tick(elapsed))
	return out
}

func (s *Session) togglePause() Outcome {
	switch s.state {
	case StateFalling:
		s.state = StatePaused
	case StatePaused:
		s.state = StateFalling
	default:
		return Outcome{}
	}
	return Outcome{Changed: true}
}

func (s *Session) shift(dx, dy int) Outcome {
	s.current.X += dx
	s.current.Y += dy
	if s.board.Collides(s.current) {
		s.current.X -= dx
		s.current.Y -= dy
		return Outcome{}
	}
	return Outcome{Changed: true}
}

func (s *Session) rotate() Outcome {
	rotated := s.current.Rotated()
	if s.board.Collides(rotated) {
		return Outcome{}
	}
	s.current = rotated
	return Outcome{Changed: true}
}

func (s *Session) gravity() Outcome {
	s.current.Y++
	if !s.board.Collides(s.current) {
		return Outcome{Changed: true}
	}
	s.current.Y--
	return s.lock()
}

func (s *Session) hardDrop() Outcome {
	rows := 0
	for {
		s.current.Y++
		if s.board.Collides(s.current) {
			s.current.Y--
			break
		}
		rows++
	}
	s.score += rows * s.rules.HardDropPoints

	out := s.lock()
	out.Dropped = rows
	return out
}

// lock runs Locking and LineClear synchronously, then spawns the next piece.
func (s *Session) lock() Outcome {
	s.state = StateLocking
	s.board.Merge(s.current)

	s.state = StateLineClear
	cleared := s.board.ClearLines()
	s.addLines(cleared)

	s.current = s.next
	s.next = s.spawn()
	s.canHold = true

	out := Outcome{Changed: true, Locked: true, Cleared: cleared}
	if s.board.Collides(s.current) {
		s.enterGameOver()
		out.GameOver = true
		return out
	}
	s.state = StateFalling
	return out
}

func (s *Session) addLines(n int) {
	if n <= 0 {
		return
	}
	s.lines += n
	s.score += s.rules.LineScore(n, s.level)
	if s.lines >= s.level*s.rules.LinesPerLevel {
		s.level++
	}
}

// hold stashes the current piece. The stashed copy keeps its position
// fields as they were; the piece that enters play always starts at spawn.
func (s *Session) hold() Outcome {
	if !s.canHold {
		return Outcome{}
	}

	prev := s.current.Clone()
	if s.held == nil {
		s.current = s.next
		s.next = s.spawn()
	} else {
		incoming := s.held.Clone()
		incoming.X = SpawnX(s.columns, incoming.Shape.Width())
		incoming.Y = 0
		s.current = incoming
	}
	s.held = &prev
	s.canHold = false

	out := Outcome{Changed: true}
	if s.board.Collides(s.current) {
		s.enterGameOver()
		out.GameOver = true
	}
	return out
}

func (s *Session) enterGameOver() {
	s.state = StateGameOver
	s.Finalize()
}

// Finalize compares the score with the best score and raises the best if
// it was beaten. It returns the best score and whether this session set it.
// Safe to call repeatedly.
func (s *Session) Finalize() (best int, improved bool) {
	if s.score > s.best {
		s.best = s.score
		s.record = true
	}
	return s.best, s.record
}

// Shadow returns where the current piece would come to rest if dropped now.
// The current piece is not modified.
func (s *Session) Shadow() Piece {
	ghost := s.current.Clone()
	if s.board.Collides(ghost) {
		return ghost
	}
	for {
		ghost.Y++
		if s.board.Collides(ghost) {
			ghost.Y--
			return ghost
		}
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int { return s.lines }

// Best returns the best score known to the session.
func (s *Session) Best() int { return s.best }

// SetBest replaces the best score, for example after loading it from disk.
func (s *Session) SetBest(best int) { s.best = best }

// CanHold reports whether hold is available before the next lock.
func (s *Session) CanHold() bool { return s.canHold }

// Current returns a copy of the falling piece.
func (s *Session) Current() Piece { return s.current.Clone() }

// Next returns a copy of the look-ahead piece.
func (s *Session) Next() Piece { return s.next.Clone() }

// Held returns a copy of the held piece, if any.
func (s *Session) Held() (Piece, bool) {
	if s.held == nil {
		return Piece{}, false
	}
	return s.held.Clone(), true
}

// Board returns a copy of the board.
func (s *Session) Board() *Board { return s.board.Clone() }

// Rules returns the session's rules.
func (s *Session) Rules() Rules { return s.rules }

// GravityInterval returns the current fall interval.
func (s *Session) GravityInterval() time.Duration {
	return s.rules.FallInterval(s.level)
}
