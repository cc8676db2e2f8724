package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board whose columns are given bottom to top as strings of
// 'R' and 'Y'. The row capacity is the smallest that leaves every column a
// free slot, but never below MinRows. Red is to move.
func boardFrom(t *testing.T, columns ...string) *Board {
	t.Helper()
	require.LessOrEqual(t, len(columns), NumCols)

	rows := MinRows
	for _, col := range columns {
		rows = max(rows, len(col)+1)
	}

	b := &Board{grid: newGrid(rows)}
	for c, col := range columns {
		for _, r := range col {
			switch r {
			case 'R':
				b.grid[c].Append(Red)
			case 'Y':
				b.grid[c].Append(Yellow)
			default:
				t.Fatalf("unexpected token %q in column %d", r, c)
			}
		}
	}
	return b
}

// requireInvariants checks capacity lockstep, the free slot left in every
// column and that no token floats above an empty cell.
func requireInvariants(t *testing.T, b *Board) {
	t.Helper()
	require.Equal(t, NumCols, b.SizeCol())
	require.GreaterOrEqual(t, b.SizeRow(), MinRows)

	for c := 0; c < b.SizeCol(); c++ {
		column, err := b.Column(c)
		require.NoError(t, err)
		require.Equal(t, b.SizeRow(), column.Capacity(), "column %d capacity", c)
		require.Less(t, column.Size(), column.Capacity(), "column %d has no free slot", c)

		seenEmpty := false
		for r := 0; r < b.SizeRow(); r++ {
			tok, err := b.Get(c, r)
			require.NoError(t, err)
			if tok == Empty {
				seenEmpty = true
				continue
			}
			require.False(t, seenEmpty, "floating token at (%d,%d)", c, r)
		}
	}
}

func columnSize(t *testing.T, b *Board, col int) int {
	t.Helper()
	column, err := b.Column(col)
	require.NoError(t, err)
	return column.Size()
}

func cellAt(t *testing.T, b *Board, col, row int) Token {
	t.Helper()
	tok, err := b.Get(col, row)
	require.NoError(t, err)
	return tok
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, NumCols, b.SizeCol())
	assert.Equal(t, MinRows, b.SizeRow())
	assert.Equal(t, Red, b.CurrentPlayer())
	assert.Equal(t, 0, b.TurnCount())
	for c := 0; c < NumCols; c++ {
		assert.Equal(t, 0, columnSize(t, b, c))
	}
	assert.Equal(t, Empty, cellAt(t, b, 0, 0))
	requireInvariants(t, b)
}

func TestDrop(t *testing.T) {
	b := NewBoard()

	assert.False(t, b.Drop(10))
	assert.False(t, b.Drop(-1))
	assert.False(t, b.Drop(NumCols))
	assert.Equal(t, Red, b.CurrentPlayer())

	require.True(t, b.Drop(2))
	assert.Equal(t, 1, columnSize(t, b, 2))
	assert.Equal(t, Red, cellAt(t, b, 2, 0))
	assert.Equal(t, Yellow, b.CurrentPlayer())
	requireInvariants(t, b)
}

func TestDropExpandsAllColumns(t *testing.T) {
	b := NewBoard()
	for i := 0; i < MinRows; i++ {
		require.True(t, b.Drop(2))
		requireInvariants(t, b)
	}

	assert.Equal(t, MinRows, columnSize(t, b, 2))
	assert.Equal(t, MinRows+1, b.SizeRow())
	for r, want := range []Token{Red, Yellow, Red, Yellow, Red, Yellow} {
		assert.Equal(t, want, cellAt(t, b, 2, r))
	}
}

func TestPop(t *testing.T) {
	b := boardFrom(t, "", "", "RRYR")

	assert.False(t, b.Pop(0), "empty column")
	assert.False(t, b.Pop(-1))
	assert.False(t, b.Pop(NumCols))

	require.True(t, b.Pop(2))
	assert.Equal(t, []Token{Red, Yellow, Red}, mustColumn(t, b, 2).Values())
	assert.Equal(t, Yellow, b.CurrentPlayer())

	assert.False(t, b.Pop(2), "bottom token belongs to the other player")
	assert.Equal(t, 1, b.TurnCount())
	requireInvariants(t, b)
}

func TestPowerDrop(t *testing.T) {
	b := boardFrom(t, "", "", "YRY")

	assert.False(t, b.PowerDrop(3, 1), "row 0 of column 3 is empty")
	assert.False(t, b.PowerDrop(2, 4), "row 3 of column 2 is empty")
	assert.False(t, b.PowerDrop(2, -1))
	assert.False(t, b.PowerDrop(NumCols, 0))
	assert.Equal(t, 0, b.TurnCount())

	require.True(t, b.PowerDrop(2, 2))
	assert.Equal(t, []Token{Yellow, Red, Red, Yellow}, mustColumn(t, b, 2).Values())

	require.True(t, b.PowerDrop(2, 4), "row == size stacks on top")
	require.True(t, b.PowerDrop(3, 0))
	assert.Equal(t, []Token{Yellow, Red, Red, Yellow, Yellow}, mustColumn(t, b, 2).Values())
	assert.Equal(t, []Token{Red}, mustColumn(t, b, 3).Values())
	requireInvariants(t, b)
}

func TestPowerDropExpands(t *testing.T) {
	b := boardFrom(t, "RYRYR")
	require.Equal(t, MinRows, b.SizeRow())

	require.True(t, b.PowerDrop(0, 0))
	assert.Equal(t, MinRows+1, b.SizeRow())
	assert.Equal(t, []Token{Red, Red, Yellow, Red, Yellow, Red}, mustColumn(t, b, 0).Values())
	requireInvariants(t, b)
}

func TestPowerPop(t *testing.T) {
	b := boardFrom(t, "YRRY")

	assert.False(t, b.PowerPop(0, 0), "Yellow token, Red to move")
	assert.False(t, b.PowerPop(0, 4), "empty cell")
	assert.False(t, b.PowerPop(0, 100))
	assert.False(t, b.PowerPop(0, -1))
	assert.False(t, b.PowerPop(-1, 0))
	assert.False(t, b.PowerPop(NumCols, 0))

	require.True(t, b.PowerPop(0, 2))
	assert.Equal(t, []Token{Yellow, Red, Yellow}, mustColumn(t, b, 0).Values())
	assert.Equal(t, Yellow, b.CurrentPlayer())
	requireInvariants(t, b)
}

func TestShrinkNeedsTwoFreeSlotsEverywhere(t *testing.T) {
	b := boardFrom(t, "RYRYRY", "YRYRYR")
	require.Equal(t, MinRows+1, b.SizeRow())

	require.True(t, b.Pop(0))
	assert.Equal(t, MinRows+1, b.SizeRow(), "column 1 still has a single free slot")

	require.True(t, b.Pop(1))
	assert.Equal(t, MinRows, b.SizeRow())
	requireInvariants(t, b)

	// never below MinRows
	require.True(t, b.Drop(4))
	assert.Equal(t, MinRows, b.SizeRow())
}

func TestGetBounds(t *testing.T) {
	b := NewBoard()

	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {NumCols, 0}, {10, 0}, {0, MinRows}} {
		_, err := b.Get(cell[0], cell[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "cell %v", cell)
	}

	_, err := b.Column(NumCols)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPlay(t *testing.T) {
	b := NewBoard()

	ok, err := b.Play(Move{Kind: MoveDrop, Col: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Play(Move{Kind: MovePowerDrop, Col: 1, Row: 0})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Play(Move{Kind: MovePowerPop, Col: 1, Row: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Play(Move{Kind: MovePop, Col: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = b.Play(Move{Kind: "slide", Col: 1})
	assert.ErrorIs(t, err, ErrUnknownMove)
	assert.Equal(t, 4, b.TurnCount())
	assert.Equal(t, 0, columnSize(t, b, 1))
}

// Plays the full sample game: drops, pops, power moves and line counts.
func TestSampleGame(t *testing.T) {
	b := NewBoard()

	require.False(t, b.Drop(10))
	require.True(t, b.Drop(2))
	for i := 0; i < 5; i++ {
		require.True(t, b.Drop(2))
	}
	assert.Equal(t, 6, columnSize(t, b, 2))
	assert.Equal(t, 7, b.SizeRow())

	require.True(t, b.Pop(2))
	assert.Equal(t, 6, b.SizeRow())
	assert.Equal(t, Red, cellAt(t, b, 2, 1))

	require.False(t, b.PowerDrop(3, 1))
	require.True(t, b.PowerDrop(3, 0))
	require.True(t, b.PowerDrop(2, 2))
	assert.Equal(t, 6, columnSize(t, b, 2))
	assert.Equal(t, Red, cellAt(t, b, 2, 2))
	assert.Equal(t, Yellow, cellAt(t, b, 2, 3))
	assert.Equal(t, 1, columnSize(t, b, 3))

	require.False(t, b.PowerPop(2, 1))
	require.True(t, b.PowerPop(2, 3))
	assert.Equal(t, 5, columnSize(t, b, 2))
	assert.Equal(t, 'R', cellAt(t, b, 2, 3).Symbol())
	assert.Equal(t, 6, b.SizeRow())
	assert.Equal(t, Red, b.CurrentPlayer())

	assert.Equal(t, 2, b.CountRow(3, 0, Yellow))
	assert.Equal(t, 0, b.CountRow(3, 0, Red))
	assert.Equal(t, 3, b.CountColumn(2, 3, Red))
	require.True(t, b.Drop(3))
	assert.Equal(t, 2, b.CountMajorDiagonal(3, 1, Red))
	assert.Equal(t, 1, b.CountMinorDiagonal(2, 0, Yellow))
	requireInvariants(t, b)
}

func TestRandomMovesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBoard()

	for step := 0; step < 3000; step++ {
		before := b.Cells()
		turn := b.TurnCount()

		col := rng.Intn(NumCols+2) - 1
		row := rng.Intn(b.SizeRow()+2) - 1
		kind := []MoveKind{MoveDrop, MoveDrop, MovePop, MovePowerDrop, MovePowerPop}[rng.Intn(5)]

		ok, err := b.Play(Move{Kind: kind, Col: col, Row: row})
		require.NoError(t, err)
		if ok {
			require.Equal(t, turn+1, b.TurnCount())
		} else {
			require.Equal(t, turn, b.TurnCount())
			require.Equal(t, before, b.Cells(), "failed %s(%d,%d) changed the board", kind, col, row)
		}
		requireInvariants(t, b)
	}
}

func TestCells(t *testing.T) {
	b := boardFrom(t, "RY", "", "Y")
	cells := b.Cells()

	require.Len(t, cells, NumCols)
	assert.Equal(t, []Token{Red, Yellow, Empty, Empty, Empty, Empty}, cells[0])
	assert.Equal(t, []Token{Yellow, Empty, Empty, Empty, Empty, Empty}, cells[2])

	cells[0][0] = Yellow
	assert.Equal(t, Red, cellAt(t, b, 0, 0))
}

func mustColumn(t *testing.T, b *Board, col int) ColumnView {
	t.Helper()
	column, err := b.Column(col)
	require.NoError(t, err)
	return column
}
