package engine

import (
	"errors"
	"time"

	"github.com/bellapacxx/lottery-backend/utils/logger"
)

// RunAutoResolve periodically resolves every open lottery whose sale window
// has elapsed, so a draw does not depend on a caller showing up. It blocks
// until stop is closed; run it in a goroutine.
func (e *Engine) RunAutoResolve(stop <-chan struct{}, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.resolveDue()
		}
	}
}

func (e *Engine) resolveDue() {
	now := e.clock.Now()
	for _, id := range e.dueLotteries(now) {
		if _, err := e.Run(id); err != nil {
			// Another caller may have resolved or cancelled it between the
			// scan and the run; that is not a failure of the loop.
			if errors.Is(err, ErrAlreadyResolved) || errors.Is(err, ErrAlreadyCancelled) {
				continue
			}
			logger.Errorf("auto-resolve of lottery %s failed: %v", id, err)
		}
	}
}

func (e *Engine) dueLotteries(now int64) []string {
	// Record mutexes are never taken while holding the registry lock; copy
	// the candidates out first.
	candidates := e.Lotteries()

	var due []string
	for _, l := range candidates {
		l.Mu.Lock()
		ready := !l.Cancelled && !l.Resolved() && l.SaleClosed(now)
		l.Mu.Unlock()
		if ready {
			due = append(due, l.ID)
		}
	}
	return due
}
