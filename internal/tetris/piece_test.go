package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		kind          Kind
		width, height int
		cells         int
	}{
		{KindI, 4, 1, 4},
		{KindT, 3, 2, 4},
		{KindO, 2, 2, 4},
		{KindS, 3, 2, 4},
		{KindZ, 3, 2, 4},
		{KindJ, 3, 2, 4},
		{KindL, 3, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := ShapeOf(tt.kind)
			assert.Equal(t, tt.width, s.Width())
			assert.Equal(t, tt.height, s.Height())
			p := Piece{Kind: tt.kind, Shape: s}
			assert.Len(t, p.Cells(), tt.cells)
		})
	}
}

func TestShapeOfReturnsCopy(t *testing.T) {
	s := ShapeOf(KindO)
	s[0][0] = false
	assert.True(t, ShapeOf(KindO)[0][0], "table shape mutated through returned copy")
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for k := range Kind(KindCount) {
		t.Run(k.String(), func(t *testing.T) {
			orig := ShapeOf(k)
			s := orig
			for range 4 {
				s = s.Rotate()
			}
			assert.True(t, orig.Equal(s), "four rotations changed %s: %v", k, s)
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	// T pointing down becomes T pointing left.
	got := ShapeOf(KindT).Rotate()
	want := Shape{
		{false, true},
		{true, true},
		{false, true},
	}
	assert.True(t, want.Equal(got), "got %v", got)

	i := ShapeOf(KindI).Rotate()
	assert.Equal(t, 1, i.Width())
	assert.Equal(t, 4, i.Height())
}

func TestNewPieceSpawnsCentered(t *testing.T) {
	tests := []struct {
		kind  Kind
		wantX int
	}{
		{KindI, 3},
		{KindO, 4},
		{KindT, 4},
	}
	for _, tt := range tests {
		p := NewPiece(tt.kind, ColorRed, 10)
		assert.Equal(t, tt.wantX, p.X, "kind %s", tt.kind)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, ColorRed, p.Color)
	}
}

func TestPieceCloneIsIndependent(t *testing.T) {
	p := NewPiece(KindL, ColorOrange, 10)
	c := p.Clone()
	c.Shape[0][0] = false
	c.X = 7
	require.True(t, p.Shape[0][0])
	assert.Equal(t, 4, p.X)
}

func TestRandomGeneratorDeterministic(t *testing.T) {
	a := NewRandomGenerator(42)
	b := NewRandomGenerator(42)
	for i := range 100 {
		da, db := a.Next(), b.Next()
		require.Equal(t, da, db, "draw %d", i)
		require.Less(t, int(da.Kind), KindCount)
		require.NotEqual(t, ColorNone, da.Color)
	}
}

func TestSequenceGeneratorCycles(t *testing.T) {
	g := Kinds(KindI, KindO)
	got := []Kind{g.Next().Kind, g.Next().Kind, g.Next().Kind}
	assert.Equal(t, []Kind{KindI, KindO, KindI}, got)

	empty := NewSequenceGenerator()
	assert.Equal(t, Draw{Kind: KindI, Color: ColorCyan}, empty.Next())
}
