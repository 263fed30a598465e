package models

import "time"

type TransactionType string

const (
	DepositTransaction  TransactionType = "deposit"
	WithdrawTransaction TransactionType = "withdraw"
	PurchaseTransaction TransactionType = "purchase"
	RefundTransaction   TransactionType = "refund"
	PayoutTransaction   TransactionType = "payout"
)

// Transaction is one row of the money ledger. Summing the rows per lottery
// reconciles escrowed proceeds against purchases, refunds and payouts.
type Transaction struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       int64           `json:"user_id"` // telegram_id
	LotteryID    string          `gorm:"index" json:"lottery_id,omitempty"`
	Type         TransactionType `json:"type"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}
