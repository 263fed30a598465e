package models

import "time"

// Capability is the bearer credential minted once per lottery at creation.
// Holding it grants the right to withdraw proceeds and, on the unwind path,
// to reclaim the prize. It is never reissued; ReturnPrize consumes it.
type Capability struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	LotteryID string    `gorm:"uniqueIndex" json:"lottery_id"`
	OwnerID   int64     `json:"owner_id"` // telegram_id of the holder
	CreatedAt time.Time `json:"created_at"`
}
