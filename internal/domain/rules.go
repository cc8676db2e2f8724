package domain

// LineCounts holds the length of the four lines through one cell.
type LineCounts struct {
	Row           int
	Column        int
	MajorDiagonal int
	MinorDiagonal int
}

// Max returns the longest of the four lines.
func (lc LineCounts) Max() int {
	return max(lc.Row, lc.Column, lc.MajorDiagonal, lc.MinorDiagonal)
}

// CountRow counts player's consecutive tokens through (col, row) along the row.
// Every counter returns 0 when the cell does not hold player's token.
func (b *Board) CountRow(col, row int, player Token) int {
	return b.countLine(col, row, 1, 0, player)
}

// CountColumn counts player's consecutive tokens through (col, row) along the column.
func (b *Board) CountColumn(col, row int, player Token) int {
	return b.countLine(col, row, 0, 1, player)
}

// CountMajorDiagonal counts along the diagonal running down-right and up-left.
func (b *Board) CountMajorDiagonal(col, row int, player Token) int {
	return b.countLine(col, row, 1, -1, player)
}

// CountMinorDiagonal counts along the diagonal running up-right and down-left.
func (b *Board) CountMinorDiagonal(col, row int, player Token) int {
	return b.countLine(col, row, 1, 1, player)
}

// Counts returns all four line lengths for whichever token occupies (col, row).
func (b *Board) Counts(col, row int) (Token, LineCounts, error) {
	token, err := b.Get(col, row)
	if err != nil {
		return Empty, LineCounts{}, err
	}
	return token, b.counts(col, row, token), nil
}

// HasFourConnected reports whether player has ToWin tokens in a line anywhere
// on the board.
func (b *Board) HasFourConnected(player Token) bool {
	for col := 0; col < b.SizeCol(); col++ {
		for row := 0; row < b.SizeRow(); row++ {
			if b.counts(col, row, player).Max() >= ToWin {
				return true
			}
		}
	}
	return false
}

func (b *Board) counts(col, row int, player Token) LineCounts {
	return LineCounts{
		Row:           b.CountRow(col, row, player),
		Column:        b.CountColumn(col, row, player),
		MajorDiagonal: b.CountMajorDiagonal(col, row, player),
		MinorDiagonal: b.CountMinorDiagonal(col, row, player),
	}
}

// countLine counts the seed cell once and then walks both ways along
// (deltaCol, deltaRow) until the line breaks.
func (b *Board) countLine(col, row, deltaCol, deltaRow int, player Token) int {
	if player == Empty || b.at(col, row) != player {
		return 0
	}
	return 1 +
		b.countInDirection(col, row, deltaCol, deltaRow, player) +
		b.countInDirection(col, row, -deltaCol, -deltaRow, player)
}

// this counts the number of tokens in a specific direction, seed excluded
func (b *Board) countInDirection(col, row, deltaCol, deltaRow int, player Token) int {
	count := 0
	c, r := col+deltaCol, row+deltaRow
	for b.at(c, r) == player {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}

// at returns the token at (col, row), treating cells off the board as Empty.
func (b *Board) at(col, row int) Token {
	if col < 0 || col >= len(b.grid) || row < 0 || row >= b.SizeRow() {
		return Empty
	}
	token, _ := b.grid[col].Get(row)
	return token
}
