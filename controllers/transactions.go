package controllers

import (
	"net/http"

	"github.com/bellapacxx/lottery-backend/config"
	"github.com/bellapacxx/lottery-backend/models"

	"github.com/gin-gonic/gin"
)

// creditUser adds wallet units to a user and records the ledger row, inside
// one DB transaction.
func creditUser(telegramID, amount int64, txType models.TransactionType, lotteryID string) error {
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		tx.Rollback()
		return err
	}

	user.Balance += amount
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return err
	}

	row := models.Transaction{
		UserID:       telegramID,
		LotteryID:    lotteryID,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: user.Balance,
	}
	if err := tx.Create(&row).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Withdraw moves wallet units out of the system (payout to the user's
// external account).
func Withdraw(c *gin.Context) {
	var req struct {
		TelegramID int64  `json:"telegramId" binding:"required"`
		Amount     int64  `json:"amount" binding:"required"`
		Method     string `json:"method"`  // optional, for tracking method
		Account    string `json:"account"` // optional, for tracking account
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence required for wallet operations"})
		return
	}

	var user models.User
	if err := config.DB.Where("telegram_id = ?", req.TelegramID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Balance < req.Amount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	user.Balance -= req.Amount
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
		return
	}

	withdrawTx := models.Transaction{
		UserID:       req.TelegramID,
		Amount:       req.Amount,
		Type:         models.WithdrawTransaction,
		BalanceAfter: user.Balance,
	}
	if err := tx.Create(&withdrawTx).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusCreated, withdrawTx)
}

// ListTransactions returns the ledger rows for a user, newest first.
func ListTransactions(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence required for wallet operations"})
		return
	}
	var rows []models.Transaction
	if err := config.DB.Where("user_id = ?", c.Param("telegram_id")).Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
