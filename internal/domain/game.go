package domain

import "fmt"

type Game struct {
	Board     *Board
	Status    GameStatus
	Winner    Token
	MoveCount int
}

func NewGame() *Game {
	return &Game{
		Board:     NewBoard(),
		Status:    StatusActive,
		Winner:    Empty,
		MoveCount: 0,
	}
}

// Apply plays m for the current player and updates the status. A pop can
// complete a line for the opponent, so both players are checked after every
// move; if both are connected at once the game is a draw.
func (g *Game) Apply(m Move) error {
	if g.IsFinished() {
		return ErrGameOver
	}

	mover := g.Board.CurrentPlayer()
	ok, err := g.Board.Play(m)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s by %s", ErrIllegalMove, m, mover)
	}

	g.MoveCount++

	moverWon := g.Board.HasFourConnected(mover)
	opponentWon := g.Board.HasFourConnected(mover.Opponent())

	switch {
	case moverWon && opponentWon:
		g.Status = StatusDraw
	case moverWon:
		g.Status = StatusWon
		g.Winner = mover
	case opponentWon:
		g.Status = StatusWon
		g.Winner = mover.Opponent()
	}

	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// Snapshot is an immutable copy of a game for renderers.
type Snapshot struct {
	Cells         [][]Token
	Rows          int
	CurrentPlayer Token
	Status        GameStatus
	Winner        Token
	MoveCount     int
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells:         g.Board.Cells(),
		Rows:          g.Board.SizeRow(),
		CurrentPlayer: g.Board.CurrentPlayer(),
		Status:        g.Status,
		Winner:        g.Winner,
		MoveCount:     g.MoveCount,
	}
}
