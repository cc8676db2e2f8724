package game

import (
	"log"
	"sync"
	"time"

	"github.com/iamasit07/power-connect-four/internal/domain"
)

// MoveRecord is one entry of a session's move history.
type MoveRecord struct {
	Number      int
	Player      domain.Token
	Move        domain.Move
	RowCapacity int
	PlayedAt    time.Time
}

// MoveResult describes the game right after a successful move.
type MoveResult struct {
	Record   MoveRecord
	Status   domain.GameStatus
	Winner   domain.Token
	NextTurn domain.Token
}

// Session owns a single game. Every access to the board goes through the
// session lock, since a row-capacity change rebuilds all columns at once.
type Session struct {
	GameID    string
	CreatedAt time.Time

	game       *domain.Game
	history    []MoveRecord
	finishedAt time.Time
	mu         sync.Mutex
	logMoves   bool
	now        func() time.Time
}

func newSession(gameID string, logMoves bool, now func() time.Time) *Session {
	return &Session{
		GameID:    gameID,
		CreatedAt: now(),
		game:      domain.NewGame(),
		logMoves:  logMoves,
		now:       now,
	}
}

func (s *Session) HandleMove(move domain.Move) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.game.Board.CurrentPlayer()
	if err := s.game.Apply(move); err != nil {
		if s.logMoves {
			log.Printf("[GAME] Game %s: %s rejected move %s: %v", s.GameID, player, move, err)
		}
		return MoveResult{}, err
	}

	record := MoveRecord{
		Number:      s.game.MoveCount,
		Player:      player,
		Move:        move,
		RowCapacity: s.game.Board.SizeRow(),
		PlayedAt:    s.now(),
	}
	s.history = append(s.history, record)

	if s.logMoves {
		log.Printf("[GAME] Game %s: move %d %s by %s, %d rows", s.GameID, record.Number, move, player, record.RowCapacity)
	}

	if s.game.IsFinished() {
		s.finishedAt = record.PlayedAt
		switch s.game.Status {
		case domain.StatusWon:
			log.Printf("[GAME] Game %s over: %s connected four after %d moves", s.GameID, s.game.Winner, s.game.MoveCount)
		case domain.StatusDraw:
			log.Printf("[GAME] Game %s over: draw after %d moves", s.GameID, s.game.MoveCount)
		}
	}

	return MoveResult{
		Record:   record,
		Status:   s.game.Status,
		Winner:   s.game.Winner,
		NextTurn: s.game.Board.CurrentPlayer(),
	}, nil
}

// Counts returns the line lengths through (col, row) for the token there.
func (s *Session) Counts(col, row int) (domain.Token, domain.LineCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Board.Counts(col, row)
}

func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Snapshot()
}

// History returns the last limit moves, or all of them when limit <= 0.
func (s *Session) History(limit int) []MoveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := 0
	if limit > 0 && len(s.history) > limit {
		start = len(s.history) - limit
	}
	history := make([]MoveRecord, len(s.history)-start)
	copy(history, s.history[start:])
	return history
}

// FinishedAt reports when the game ended, if it has.
func (s *Session) FinishedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.finishedAt, s.game.IsFinished()
}
