package controllers

import (
	"net/http"

	"github.com/bellapacxx/lottery-backend/config"
	"github.com/bellapacxx/lottery-backend/models"
	"github.com/bellapacxx/lottery-backend/services"
	"github.com/gin-gonic/gin"
)

type VerifyDepositRequest struct {
	TelegramID     int64  `json:"telegramId" binding:"required"`
	SMS            string `json:"sms" binding:"required"`            // Copied SMS text
	ExpectedAmount int64  `json:"expectedAmount" binding:"required"` // Amount expected
	Reference      string `json:"reference" binding:"required"`      // Reference code
}

// VerifyDeposit checks the payment SMS with the external verifier and, on
// success, credits the user's wallet.
func VerifyDeposit(c *gin.Context) {
	var req VerifyDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence required for wallet operations"})
		return
	}

	verified, err := services.VerifyDeposit(req.SMS)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if verified {
		if err := creditUser(req.TelegramID, req.ExpectedAmount, models.DepositTransaction, ""); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to credit deposit"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": verified,
	})
}
