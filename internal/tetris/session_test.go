package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(gen Generator) *Session {
	return NewSession(Options{Rows: 20, Columns: 10, Generator: gen})
}

func noDropPoints() Rules {
	r := DefaultRules()
	r.HardDropPoints = 0
	return r
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(Kinds(KindT, KindO))

	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Lines())
	assert.True(t, s.CanHold())
	assert.Equal(t, KindT, s.Current().Kind)
	assert.Equal(t, KindO, s.Next().Kind)
	_, held := s.Held()
	assert.False(t, held)
	assert.Equal(t, 0, s.Board().Filled())
}

func TestHardDropUnobstructed(t *testing.T) {
	s := newTestSession(Kinds(KindI))

	out := s.Apply(CmdHardDrop)

	assert.True(t, out.Locked)
	assert.Equal(t, 19, out.Dropped)
	assert.Equal(t, 19, s.Score(), "one point per row descended")
	b := s.Board()
	for x := 3; x <= 6; x++ {
		assert.Equal(t, ColorCyan, b.At(x, 19), "column %d", x)
	}
	assert.Equal(t, 4, b.Filled())
}

func TestHardDropStacksFourI(t *testing.T) {
	s := newTestSession(Kinds(KindI))

	for range 4 {
		s.Apply(CmdHardDrop)
	}

	b := s.Board()
	for y := 16; y <= 19; y++ {
		for x := 3; x <= 6; x++ {
			assert.NotEqual(t, ColorNone, b.At(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 16, b.Filled())
	assert.Equal(t, 19+18+17+16, s.Score())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, StateFalling, s.State())
}

func TestSingleLineClear(t *testing.T) {
	s := NewSession(Options{Generator: Kinds(KindI), Rules: noDropPoints()})
	fillRow(s.board, 19, ColorRed, 3, 4, 5, 6)

	out := s.Apply(CmdHardDrop)

	assert.Equal(t, 1, out.Cleared)
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Board().Filled())
}

func TestLevelAdvancesAfterTenLines(t *testing.T) {
	s := NewSession(Options{Generator: Kinds(KindI), Rules: noDropPoints()})
	s.lines = 9

	fillRow(s.board, 19, ColorRed, 3, 4, 5, 6)
	s.Apply(CmdHardDrop)
	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 100, s.Score(), "points use the level before advancing")
	assert.Equal(t, 2, s.Level())

	fillRow(s.board, 19, ColorRed, 3, 4, 5, 6)
	s.Apply(CmdHardDrop)
	assert.Equal(t, 11, s.Lines())
	assert.Equal(t, 300, s.Score())
	assert.Equal(t, 2, s.Level())
}

func TestMultiLineClearScoresPerLine(t *testing.T) {
	s := NewSession(Options{Generator: Kinds(KindI), Rules: noDropPoints()})
	s.Apply(CmdRotate)
	for range 6 {
		s.Apply(CmdMoveRight)
	}
	require.Equal(t, 9, s.Current().X)
	for y := 16; y <= 19; y++ {
		fillRow(s.board, y, ColorBlue, 9)
	}

	out := s.Apply(CmdHardDrop)

	assert.Equal(t, 4, out.Cleared)
	assert.Equal(t, 400, s.Score())
	assert.Equal(t, 0, s.Board().Filled())
}

func TestMoveStopsAtWalls(t *testing.T) {
	s := newTestSession(Kinds(KindO))

	for range 20 {
		s.Apply(CmdMoveLeft)
	}
	assert.Equal(t, 0, s.Current().X)
	assert.Equal(t, Outcome{}, s.Apply(CmdMoveLeft))

	for range 20 {
		s.Apply(CmdMoveRight)
	}
	assert.Equal(t, 8, s.Current().X)
}

func TestSoftDropMovesWithoutScoring(t *testing.T) {
	s := newTestSession(Kinds(KindO))

	out := s.Apply(CmdSoftDrop)

	assert.True(t, out.Changed)
	assert.Equal(t, 1, s.Current().Y)
	assert.Equal(t, 0, s.Score())
}

func TestSoftDropAtFloorIsNoOp(t *testing.T) {
	s := newTestSession(Kinds(KindO))
	for range 18 {
		s.Apply(CmdSoftDrop)
	}
	require.Equal(t, 18, s.Current().Y)

	out := s.Apply(CmdSoftDrop)

	assert.False(t, out.Locked, "soft drop never locks")
	assert.Equal(t, 18, s.Current().Y)
	assert.Equal(t, 0, s.Board().Filled())
}

func TestRotateRejectedAtWall(t *testing.T) {
	s := newTestSession(Kinds(KindI))
	s.Apply(CmdRotate)
	for range 10 {
		s.Apply(CmdMoveRight)
	}
	before := s.Current()
	require.Equal(t, 1, before.Shape.Width())

	out := s.Apply(CmdRotate)

	assert.False(t, out.Changed)
	assert.True(t, before.Shape.Equal(s.Current().Shape))
	assert.Equal(t, before.X, s.Current().X)
}

func TestHold(t *testing.T) {
	s := newTestSession(Kinds(KindI, KindT, KindO))

	out := s.Apply(CmdHold)
	require.True(t, out.Changed)
	held, ok := s.Held()
	require.True(t, ok)
	assert.Equal(t, KindI, held.Kind)
	assert.Equal(t, KindT, s.Current().Kind)
	assert.Equal(t, KindO, s.Next().Kind)
	assert.False(t, s.CanHold())

	cur := s.Current()
	assert.Equal(t, Outcome{}, s.Apply(CmdHold), "second hold before lock is ignored")
	held2, _ := s.Held()
	assert.Equal(t, KindI, held2.Kind)
	assert.Equal(t, cur.Kind, s.Current().Kind)

	s.Apply(CmdHardDrop)
	assert.True(t, s.CanHold())
	require.Equal(t, KindO, s.Current().Kind)

	s.Apply(CmdHold)
	held3, _ := s.Held()
	assert.Equal(t, KindO, held3.Kind)
	assert.Equal(t, KindI, s.Current().Kind)
	assert.Equal(t, 3, s.Current().X, "swapped-in piece starts at spawn")
	assert.Equal(t, 0, s.Current().Y)
}

func TestHoldKeepsColor(t *testing.T) {
	s := newTestSession(NewSequenceGenerator(
		Draw{Kind: KindS, Color: ColorPurple},
		Draw{Kind: KindZ, Color: ColorGreen},
	))
	s.Apply(CmdHold)
	held, _ := s.Held()
	assert.Equal(t, ColorPurple, held.Color)
}

func TestGameOverFreezesSession(t *testing.T) {
	s := newTestSession(Kinds(KindI))

	var out Outcome
	for range 20 {
		out = s.Apply(CmdHardDrop)
	}

	require.True(t, out.GameOver)
	require.Equal(t, StateGameOver, s.State())
	total := 0
	for rows := range 20 {
		total += rows
	}
	assert.Equal(t, total, s.Score())
	assert.Equal(t, total, s.Best())

	board := s.Board().Cells()
	score := s.Score()
	for _, cmd := range []Command{CmdMoveLeft, CmdMoveRight, CmdSoftDrop, CmdRotate, CmdHardDrop, CmdHold, CmdPause} {
		assert.Equal(t, Outcome{}, s.Apply(cmd), "command %s", cmd)
	}
	assert.Equal(t, Outcome{}, s.Tick(time.Hour))
	assert.Equal(t, board, s.Board().Cells())
	assert.Equal(t, score, s.Score())
	assert.Equal(t, StateGameOver, s.State())

	s.Apply(CmdReset)
	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Board().Filled())
	assert.Equal(t, total, s.Best(), "best survives reset")
}

func TestHoldIntoBlockedSpawnEndsGame(t *testing.T) {
	s := newTestSession(Kinds(KindI, KindO))
	s.Apply(CmdSoftDrop)
	s.Apply(CmdSoftDrop)
	s.board.Set(4, 0, ColorRed)

	out := s.Apply(CmdHold)

	assert.True(t, out.GameOver)
	assert.Equal(t, StateGameOver, s.State())
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession(Kinds(KindT))

	s.Apply(CmdPause)
	require.Equal(t, StatePaused, s.State())
	before := s.Current()

	for _, cmd := range []Command{CmdMoveLeft, CmdRotate, CmdHardDrop, CmdHold} {
		s.Apply(cmd)
	}
	s.Tick(time.Hour)
	assert.Equal(t, before, s.Current())
	assert.Equal(t, 0, s.Board().Filled())

	s.Apply(CmdPause)
	assert.Equal(t, StateFalling, s.State())
}

func TestGravityTiming(t *testing.T) {
	s := newTestSession(Kinds(KindO))
	interval := s.GravityInterval()
	require.Equal(t, 270*time.Millisecond, interval)

	s.Tick(interval)
	assert.Equal(t, 0, s.Current().Y, "interval must be exceeded, not reached")

	s.Tick(time.Millisecond)
	assert.Equal(t, 1, s.Current().Y)

	s.Tick(interval / 2)
	assert.Equal(t, 1, s.Current().Y, "accumulator resets after a step")
}

func TestGravityLocksOnFloor(t *testing.T) {
	s := newTestSession(Kinds(KindO))
	for range 18 {
		s.Apply(CmdSoftDrop)
	}

	out := s.Tick(time.Second)

	assert.True(t, out.Locked)
	assert.Equal(t, 4, s.Board().Filled())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Current().Y)
}

func TestFallIntervalShrinksWithLevel(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, 270*time.Millisecond, r.FallInterval(1))
	assert.Equal(t, 216*time.Millisecond, r.FallInterval(2))
	assert.Less(t, r.FallInterval(5), r.FallInterval(4))

	r.FixedSpeed = true
	r.StartLevel = 3
	assert.Equal(t, r.FallInterval(3), r.FallInterval(9))
}

func TestShadowDoesNotMoveCurrent(t *testing.T) {
	s := newTestSession(Kinds(KindI))
	s.board.Set(4, 12, ColorRed)
	before := s.Current()

	ghost := s.Shadow()

	assert.Equal(t, 11, ghost.Y)
	assert.Equal(t, before.X, ghost.X)
	assert.Equal(t, before, s.Current())
}

func TestStepAppliesInOrder(t *testing.T) {
	s := newTestSession(Kinds(KindO))

	s.Step([]Command{CmdMoveLeft, CmdMoveLeft, CmdSoftDrop}, 0)

	assert.Equal(t, 2, s.Current().X)
	assert.Equal(t, 1, s.Current().Y)
}

func TestFinalizeRaisesBest(t *testing.T) {
	s := NewSession(Options{Generator: Kinds(KindI), HighScore: 10})
	s.Apply(CmdHardDrop)

	best, improved := s.Finalize()
	assert.Equal(t, 19, best)
	assert.True(t, improved)

	low := NewSession(Options{Generator: Kinds(KindI), HighScore: 500})
	low.Apply(CmdHardDrop)
	best, improved = low.Finalize()
	assert.Equal(t, 500, best)
	assert.False(t, improved)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestSession(Kinds(KindT, KindL))
	snap := s.Snapshot()
	snap.Board[19][0] = ColorRed
	snap.Current.Shape[0][0] = false

	assert.Equal(t, ColorNone, s.Board().At(0, 19))
	assert.True(t, s.Current().Shape[0][0])
	assert.Equal(t, KindL, snap.Next.Kind)
	assert.Equal(t, 18, snap.Shadow.Y)
}

func TestRandomPlayNeverOverlaps(t *testing.T) {
	cmds := []Command{CmdMoveLeft, CmdMoveRight, CmdSoftDrop, CmdRotate, CmdHardDrop, CmdHold}
	rng := rand.New(rand.NewSource(7))

	for game := range 5 {
		s := NewSession(Options{Generator: NewRandomGenerator(int64(game))})
		for step := range 2000 {
			s.Step([]Command{cmds[rng.Intn(len(cmds))]}, 50*time.Millisecond)
			if s.State() == StateGameOver {
				break
			}
			require.False(t, s.board.Collides(s.current), "game %d step %d: active piece overlaps", game, step)
			require.GreaterOrEqual(t, s.Level(), 1)
		}
	}
}

func TestSessionDeterministic(t *testing.T) {
	play := func() Snapshot {
		s := NewSession(Options{Generator: NewRandomGenerator(99)})
		for i := range 300 {
			cmd := []Command{CmdMoveLeft, CmdRotate, CmdMoveRight, CmdHardDrop}[i%4]
			s.Step([]Command{cmd}, 16*time.Millisecond)
		}
		return s.Snapshot()
	}
	assert.Equal(t, play(), play())
}
