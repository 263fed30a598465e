package controllers

import (
	"net/http"
	"strconv"

	"github.com/bellapacxx/lottery-backend/config"
	"github.com/bellapacxx/lottery-backend/models"
	"github.com/bellapacxx/lottery-backend/wallet"

	"github.com/gin-gonic/gin"
)

type BuyTicketRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Number     *int64 `json:"ticket_number" binding:"required"` // pointer so 0 binds
	Amount     int64  `json:"amount"`                           // defaults to the ticket price
}

// BuyTicket debits the buyer's wallet and purchases a number. The debit and
// the ledger row are staged in the DB transaction first; the engine purchase
// runs last, because the debit can be rolled back and the purchase cannot.
func BuyTicket(c *gin.Context) {
	var req BuyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence required for wallet operations"})
		return
	}

	lottery, err := Engine.Lottery(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	amount := req.Amount
	if amount == 0 {
		amount = lottery.TicketPrice
	}
	// With change enabled the engine only ever takes the ticket price, so
	// the remainder never leaves the buyer's account in the first place.
	spent := amount
	if Engine.ReturnsChange() && amount > lottery.TicketPrice {
		spent = lottery.TicketPrice
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.Where("telegram_id = ?", req.TelegramID).First(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Balance < spent {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		return
	}

	user.Balance -= spent
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to debit balance"})
		return
	}
	row := models.Transaction{
		UserID:       req.TelegramID,
		LotteryID:    lottery.ID,
		Type:         models.PurchaseTransaction,
		Amount:       spent,
		BalanceAfter: user.Balance,
	}
	if err := tx.Create(&row).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record purchase"})
		return
	}

	ticket, err := Engine.Buy(lottery.ID, *req.Number, wallet.New(spent), req.TelegramID)
	if err != nil {
		tx.Rollback()
		respondEngineError(c, err)
		return
	}
	tx.Commit()

	c.JSON(http.StatusCreated, ticket)
}

// GetTicketsByUser fetches all live tickets of a user.
func GetTicketsByUser(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid telegram_id"})
		return
	}
	c.JSON(http.StatusOK, Engine.TicketsByOwner(telegramID))
}

type ClaimPrizeRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	TicketID   string `json:"ticket_id" binding:"required"`
}

// ClaimPrize transfers the prize to the winning ticket holder.
func ClaimPrize(c *gin.Context) {
	var req ClaimPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := Engine.Ticket(req.TicketID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if ticket.OwnerID != req.TelegramID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the ticket holder"})
		return
	}

	prize, err := Engine.ClaimPrize(c.Param("id"), req.TicketID, req.TelegramID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, prize)
}

type RefundTicketRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	TicketID   string `json:"ticket_id" binding:"required"`
}

// RefundTicket returns the ticket price after the grace period on a
// never-resolved lottery. The first refund cancels the lottery. A refund
// always pays back exactly the ticket price, so the credit is staged before
// the engine destroys the ticket and rolled back if the refund is rejected.
func RefundTicket(c *gin.Context) {
	var req RefundTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence required for wallet operations"})
		return
	}

	ticket, err := Engine.Ticket(req.TicketID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if ticket.OwnerID != req.TelegramID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the ticket holder"})
		return
	}
	lottery, err := Engine.Lottery(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	amount := lottery.TicketPrice

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.Where("telegram_id = ?", req.TelegramID).First(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user.Balance += amount
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit balance"})
		return
	}
	row := models.Transaction{
		UserID:       req.TelegramID,
		LotteryID:    lottery.ID,
		Type:         models.RefundTransaction,
		Amount:       amount,
		BalanceAfter: user.Balance,
	}
	if err := tx.Create(&row).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record refund"})
		return
	}

	if _, err := Engine.Refund(lottery.ID, req.TicketID); err != nil {
		tx.Rollback()
		respondEngineError(c, err)
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

type BurnTicketRequest struct {
	TelegramID int64 `json:"telegram_id" binding:"required"`
}

// BurnTicket destroys a spent ticket and frees its number.
func BurnTicket(c *gin.Context) {
	var req BurnTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := Engine.Ticket(c.Param("ticket_id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if ticket.OwnerID != req.TelegramID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the ticket holder"})
		return
	}

	if err := Engine.BurnTicket(ticket.ID); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"burned": ticket.ID})
}
