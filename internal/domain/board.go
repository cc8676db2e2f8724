package domain

import (
	"fmt"
	"log"

	"github.com/iamasit07/power-connect-four/internal/container"
)

// Board is a Power Connect Four grid: NumCols columns stacked from row 0
// upward. All columns share one row capacity; whenever it changes every column
// is rebuilt at the new capacity.
//
// Board is not safe for concurrent use.
type Board struct {
	grid []*container.Array[Token]
	turn int
}

// ColumnView is the read-only side of a board column.
type ColumnView interface {
	Get(index int) (Token, error)
	Size() int
	Capacity() int
	Values() []Token
}

func NewBoard() *Board {
	return &Board{grid: newGrid(MinRows)}
}

// newGrid builds empty columns whose shrink floor is their own capacity, so a
// column never resizes itself behind the board's back.
func newGrid(rows int) []*container.Array[Token] {
	grid := make([]*container.Array[Token], NumCols)
	for i := range grid {
		column, err := container.New[Token](rows, container.WithMinCapacity(rows))
		if err != nil {
			panic(fmt.Sprintf("board: cannot build column with %d rows: %v", rows, err))
		}
		grid[i] = column
	}
	return grid
}

// SizeCol returns the number of columns.
func (b *Board) SizeCol() int {
	return len(b.grid)
}

// SizeRow returns the shared row capacity, i.e. the number of rows to display.
func (b *Board) SizeRow() int {
	return b.grid[0].Capacity()
}

// TurnCount returns how many moves have been played.
func (b *Board) TurnCount() int {
	return b.turn
}

// CurrentPlayer returns the token of the player to move.
func (b *Board) CurrentPlayer() Token {
	if b.turn%2 == 0 {
		return FirstPlayer
	}
	return SecondPlayer
}

// Get returns the token at (col, row), or Empty if the cell is unoccupied.
func (b *Board) Get(col, row int) (Token, error) {
	if col < 0 || col >= len(b.grid) || row < 0 {
		return Empty, fmt.Errorf("%w: col %d, row %d", ErrOutOfRange, col, row)
	}
	token, err := b.grid[col].Get(row)
	if err != nil {
		return Empty, fmt.Errorf("col %d: %w", col, err)
	}
	return token, nil
}

// Column returns a read-only view of a column.
func (b *Board) Column(col int) (ColumnView, error) {
	if col < 0 || col >= len(b.grid) {
		return nil, fmt.Errorf("%w: col %d", ErrOutOfRange, col)
	}
	return b.grid[col], nil
}

// Cells returns a column-major copy of the grid, SizeRow() cells per column.
func (b *Board) Cells() [][]Token {
	cells := make([][]Token, len(b.grid))
	for c, column := range b.grid {
		cells[c] = make([]Token, b.SizeRow())
		copy(cells[c], column.Values())
	}
	return cells
}

// Drop puts the current player's token on top of column col.
func (b *Board) Drop(col int) bool {
	column, ok := b.column(col)
	if !ok || column.Size() >= column.Capacity() {
		return false
	}

	column.Append(b.CurrentPlayer())
	b.advance(col)
	return true
}

// PowerDrop inserts the current player's token at row, lifting the tokens at
// and above it. The cell below row must be occupied.
func (b *Board) PowerDrop(col, row int) bool {
	column, ok := b.column(col)
	if !ok || row < 0 || row > column.Size() || column.Size() >= column.Capacity() {
		return false
	}

	if err := column.InsertAt(row, b.CurrentPlayer()); err != nil {
		log.Printf("[BOARD] Power drop at (%d,%d) rejected: %v", col, row, err)
		return false
	}
	b.advance(col)
	return true
}

// Pop removes the bottom token of col if it belongs to the current player.
func (b *Board) Pop(col int) bool {
	return b.PowerPop(col, 0)
}

// PowerPop removes the token at row of col if it belongs to the current
// player. Tokens above it fall by one row.
func (b *Board) PowerPop(col, row int) bool {
	column, ok := b.column(col)
	if !ok || row < 0 || row >= column.Size() {
		return false
	}

	token, err := column.Get(row)
	if err != nil || token != b.CurrentPlayer() {
		return false
	}

	if _, err := column.DeleteAt(row); err != nil {
		log.Printf("[BOARD] Power pop at (%d,%d) rejected: %v", col, row, err)
		return false
	}
	b.advance(col)
	return true
}

// Play applies m and reports whether it was legal.
func (b *Board) Play(m Move) (bool, error) {
	switch m.Kind {
	case MoveDrop:
		return b.Drop(m.Col), nil
	case MovePop:
		return b.Pop(m.Col), nil
	case MovePowerDrop:
		return b.PowerDrop(m.Col, m.Row), nil
	case MovePowerPop:
		return b.PowerPop(m.Col, m.Row), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownMove, m.Kind)
	}
}

func (b *Board) column(col int) (*container.Array[Token], bool) {
	if col < 0 || col >= len(b.grid) {
		return nil, false
	}
	return b.grid[col], true
}

func (b *Board) advance(col int) {
	b.turn++
	b.checkRowCapacity(col)
}

// checkRowCapacity grows the board when col is full, otherwise shrinks it by a
// row once every column has at least two free slots.
func (b *Board) checkRowCapacity(col int) {
	column := b.grid[col]
	if column.Size() >= column.Capacity() {
		b.rebuild(b.SizeRow() + 1)
		return
	}

	if b.SizeRow() <= MinRows {
		return
	}
	for _, c := range b.grid {
		if c.Capacity()-c.Size() < 2 {
			return
		}
	}
	b.rebuild(b.SizeRow() - 1)
}

func (b *Board) rebuild(rows int) {
	grid := newGrid(rows)
	for c, old := range b.grid {
		for it := old.Iterator(); it.Next(); {
			grid[c].Append(it.Value())
		}
	}
	log.Printf("[BOARD] Row capacity %d -> %d", b.SizeRow(), rows)
	b.grid = grid
}
