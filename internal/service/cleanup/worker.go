package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/power-connect-four/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	// MaxAge is how long a finished game is kept around.
	MaxAge   time.Duration
	Interval time.Duration
}

func NewWorker(sm *game.SessionManager, maxAge, interval time.Duration) *Worker {
	return &Worker{SessionManager: sm, MaxAge: maxAge, Interval: interval}
}

// Start runs the sweep on every tick until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) runCleanup() int {
	removed := w.SessionManager.CleanupFinishedSessions(w.MaxAge)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d finished games", removed)
	}
	return removed
}
