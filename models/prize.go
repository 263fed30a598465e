package models

import "time"

// Prize is the opaque asset a lottery escrows. The engine only holds and
// transfers it; OwnerID is nil while it sits in escrow and is set exactly
// once, for the winner or for the creator on cancellation.
type Prize struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	LotteryID   string    `gorm:"index" json:"lottery_id"`
	Description string    `json:"description"`
	OwnerID     *int64    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
