package models

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bellapacxx/lottery-backend/wallet"
	"gorm.io/datatypes"
)

// Lottery lifecycle states.
const (
	StatusOpen         = "open"
	StatusResolved     = "resolved"
	StatusPrizeClaimed = "prize_claimed"
	StatusCancelled    = "cancelled"
	StatusUnwound      = "unwound"
)

// Lottery is the shared escrow record for one prize draw. Buyers pay the
// ticket price into Proceeds for a number in [0, NumberRange]; after the
// sale window a winning number is drawn and the matching ticket claims the
// prize. If the draw never happens, refunds and prize return unwind it.
//
// The in-memory record is the source of truth while the process runs; the
// gorm columns are the persisted snapshot (SoldJSON mirrors Sold,
// ProceedsUnits mirrors Proceeds).
type Lottery struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	MinParticipants int            `json:"min_participants"`
	TicketPrice     int64          `json:"ticket_price"`
	NumberRange     int64          `json:"number_range"` // inclusive upper bound
	WinningNumber   *int64         `json:"winning_number"`
	StartTime       int64          `json:"start_time"` // unix seconds
	EndTime         int64          `json:"end_time"`   // unix seconds
	Cancelled       bool           `json:"cancelled"`
	Status          string         `json:"status"`
	ProceedsUnits   int64          `json:"proceeds"`
	SoldJSON        datatypes.JSON `json:"sold_numbers"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	// Runtime state, never persisted directly.
	Prize    *Prize          `gorm:"-" json:"-"`
	Proceeds *wallet.Balance `gorm:"-" json:"-"`
	Sold     map[int64]bool  `gorm:"-" json:"-"`

	Mu sync.Mutex `gorm:"-" json:"-"`
}

// Resolved reports whether a winning number has been drawn.
func (l *Lottery) Resolved() bool {
	return l.WinningNumber != nil
}

// SaleClosed reports whether the sale window has fully elapsed.
func (l *Lottery) SaleClosed(now int64) bool {
	return l.EndTime < now
}

// GraceElapsed reports whether the unwind grace period after EndTime has
// passed, which is what arms refund and prize return.
func (l *Lottery) GraceElapsed(now, grace int64) bool {
	return l.EndTime+grace < now
}

// SyncSnapshot refreshes the persisted columns from the runtime state.
// Callers must hold Mu.
func (l *Lottery) SyncSnapshot() {
	l.ProceedsUnits = l.Proceeds.Value()
	numbers := make([]int64, 0, len(l.Sold))
	for n := range l.Sold {
		numbers = append(numbers, n)
	}
	b, _ := json.Marshal(numbers)
	l.SoldJSON = datatypes.JSON(b)
	l.UpdatedAt = time.Now()
}

// Snapshot returns a detached copy of the persisted columns, for a storage
// write or a serialized view, leaving the mutex and runtime state behind.
// Callers must hold Mu.
func (l *Lottery) Snapshot() *Lottery {
	return &Lottery{
		ID:              l.ID,
		MinParticipants: l.MinParticipants,
		TicketPrice:     l.TicketPrice,
		NumberRange:     l.NumberRange,
		WinningNumber:   l.WinningNumber,
		StartTime:       l.StartTime,
		EndTime:         l.EndTime,
		Cancelled:       l.Cancelled,
		Status:          l.Status,
		ProceedsUnits:   l.ProceedsUnits,
		SoldJSON:        l.SoldJSON,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// RestoreRuntime rebuilds the runtime state from the persisted columns
// after a load from the database.
func (l *Lottery) RestoreRuntime() error {
	l.Proceeds = wallet.New(l.ProceedsUnits)
	l.Sold = make(map[int64]bool)
	if len(l.SoldJSON) == 0 {
		return nil
	}
	var numbers []int64
	if err := json.Unmarshal(l.SoldJSON, &numbers); err != nil {
		return err
	}
	for _, n := range numbers {
		l.Sold[n] = true
	}
	return nil
}
