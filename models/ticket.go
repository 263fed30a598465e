package models

import "time"

// Ticket is the bearer record of one purchased number in one lottery.
// Only the engine mints tickets; it destroys them on refund or burn.
type Ticket struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	LotteryID string    `gorm:"index" json:"lottery_id"`
	Number    int64     `json:"ticket_number"`
	OwnerID   int64     `json:"owner_id"` // telegram_id of the holder
	CreatedAt time.Time `json:"created_at"`
}

// IsWinner checks whether this ticket matches the winning number.
func (t *Ticket) IsWinner(winningNumber int64) bool {
	return t.Number == winningNumber
}
