package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineClearDetect(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	lc := newLineClear(DefaultClearDuration)

	assert.Nil(t, lc.detect(b, 0), "no full rows")
	assert.IsType(t, Idle{}, lc.state)

	fillRow(b, 19)
	fillRow(b, 18)
	c := lc.detect(b, 3*time.Second)
	require.NotNil(t, c)
	assert.Equal(t, []int{19, 18}, c.Rows)
	assert.Equal(t, 3*time.Second, c.StartedAt)
	assert.Same(t, c, lc.active())

	fillRow(b, 17)
	assert.Nil(t, lc.detect(b, 3*time.Second), "only one clear at a time")
	assert.Equal(t, []int{19, 18}, lc.active().Rows, "row set fixed at detection")
}

func TestLineClearProgress(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	fillRow(b, 19)
	lc := newLineClear(500 * time.Millisecond)
	start := 10 * time.Second
	lc.detect(b, start)

	assert.Nil(t, lc.advance(start+100*time.Millisecond))
	assert.InDelta(t, 0.2, lc.active().Progress, 1e-9)

	assert.Nil(t, lc.advance(start+499*time.Millisecond))
	assert.True(t, b.IsRowFull(19), "rows stay until commit")

	done := lc.advance(start + 700*time.Millisecond)
	require.NotNil(t, done)
	assert.Equal(t, 1.0, done.Progress, "progress is clamped")
	assert.Nil(t, lc.active())
	assert.Nil(t, lc.advance(start+time.Second), "idle machine does nothing")
}

func TestCommitContiguousRows(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	b[15][0] = PieceI
	fillRow(b, 16)
	b[17][3] = PieceO
	fillRow(b, 18)
	fillRow(b, 19)

	c := &Clearing{Rows: []int{19, 18, 16}}
	c.commit(b)

	assert.Equal(t, DefaultRows, b.Rows())
	assert.Empty(t, b.FullRows())
	assert.Equal(t, 2, b.Occupied())
	assert.Equal(t, PieceO, b[19][3])
	assert.Equal(t, PieceI, b[18][0])
}

func TestCommitAllRows(t *testing.T) {
	b := NewBoard(4, 3)
	for y := range 4 {
		fillRow(b, y)
	}

	c := &Clearing{Rows: b.FullRows()}
	c.commit(b)

	assert.Zero(t, b.Occupied())
}

func TestCommitUnsortedRows(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	fillRow(b, 10)
	fillRow(b, 19)
	b[9][5] = PieceZ
	b[18][5] = PieceS

	c := &Clearing{Rows: []int{10, 19}}
	c.commit(b)

	assert.Equal(t, PieceS, b[19][5])
	assert.Equal(t, PieceZ, b[11][5])
	assert.Equal(t, 2, b.Occupied())
}

func TestClearingIncludes(t *testing.T) {
	c := &Clearing{Rows: []int{19, 17}}
	assert.True(t, c.Includes(17))
	assert.False(t, c.Includes(18))
}
