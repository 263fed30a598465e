package controllers

import (
	"net/http"

	"github.com/bellapacxx/lottery-backend/config"
	"github.com/bellapacxx/lottery-backend/engine"
	"github.com/bellapacxx/lottery-backend/models"
	"github.com/bellapacxx/lottery-backend/utils/logger"
	"github.com/gin-gonic/gin"
)

// Engine is the shared lottery engine, wired up in main.
var Engine *engine.Engine

// respondEngineError maps the engine failure taxonomy to HTTP statuses.
func respondEngineError(c *gin.Context, err error) {
	code := engine.Code(err)
	status := http.StatusInternalServerError
	switch code {
	case "INVALID_CONFIGURATION", "INSUFFICIENT_PAYMENT":
		status = http.StatusBadRequest
	case "AUTHORIZATION_MISMATCH":
		status = http.StatusForbidden
	case "RECORD_NOT_FOUND":
		status = http.StatusNotFound
	case "ALREADY_RESOLVED", "ALREADY_CANCELLED", "NOT_YET_ELIGIBLE",
		"NUMBER_UNAVAILABLE", "NOTHING_TO_CLAIM":
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

type CreateLotteryRequest struct {
	TelegramID       int64  `json:"telegram_id" binding:"required"`
	MinParticipants  int    `json:"min_participants" binding:"required"`
	TicketPrice      int64  `json:"ticket_price" binding:"required"`
	NumberRange      int64  `json:"number_range" binding:"required"`
	StartTime        int64  `json:"start_time" binding:"required"`
	EndTime          int64  `json:"end_time" binding:"required"`
	PrizeDescription string `json:"prize_description"`
}

// CreateLottery opens a new lottery and hands the capability to the creator.
func CreateLottery(c *gin.Context) {
	var req CreateLotteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lottery, capability, err := Engine.Create(engine.CreateParams{
		MinParticipants:  req.MinParticipants,
		TicketPrice:      req.TicketPrice,
		NumberRange:      req.NumberRange,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		PrizeDescription: req.PrizeDescription,
		CreatorID:        req.TelegramID,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}

	view, err := Engine.LotteryView(lottery.ID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"lottery":    view,
		"capability": capability,
	})
}

// ListLotteries returns snapshots of all live lottery records. The engine
// keeps mutating the live ones, so handlers never serialize those directly.
func ListLotteries(c *gin.Context) {
	c.JSON(http.StatusOK, Engine.LotteryViews())
}

// GetLottery returns a snapshot of a single lottery record.
func GetLottery(c *gin.Context) {
	view, err := Engine.LotteryView(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RunLottery draws the winning number once the sale window has elapsed.
// Anyone may call it; the guards live in the engine.
func RunLottery(c *gin.Context) {
	winning, err := Engine.Run(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winning_number": winning})
}

type WithdrawProceedsRequest struct {
	TelegramID   int64  `json:"telegram_id" binding:"required"`
	CapabilityID string `json:"capability_id" binding:"required"`
}

// WithdrawProceeds empties the proceeds to the capability holder's wallet.
func WithdrawProceeds(c *gin.Context) {
	var req WithdrawProceedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence required for wallet operations"})
		return
	}

	capability, err := Engine.Capability(req.CapabilityID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if capability.OwnerID != req.TelegramID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the capability holder"})
		return
	}

	payout, err := Engine.Withdraw(c.Param("id"), req.CapabilityID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	amount := payout.Value()
	if err := creditUser(req.TelegramID, amount, models.PayoutTransaction, c.Param("id")); err != nil {
		// The units go back into escrow rather than vanishing with the
		// failed credit; the capability survives, so the holder can retry.
		if restoreErr := Engine.RestoreProceeds(c.Param("id"), payout); restoreErr != nil {
			logger.Errorf("failed to restore %d units to lottery %s: %v", amount, c.Param("id"), restoreErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to credit payout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

type ReturnPrizeRequest struct {
	TelegramID   int64  `json:"telegram_id" binding:"required"`
	CapabilityID string `json:"capability_id" binding:"required"`
}

// ReturnPrize reclaims the prize on the unwind path, consuming the
// capability for good.
func ReturnPrize(c *gin.Context) {
	var req ReturnPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	capability, err := Engine.Capability(req.CapabilityID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if capability.OwnerID != req.TelegramID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the capability holder"})
		return
	}

	prize, err := Engine.ReturnPrize(c.Param("id"), req.CapabilityID, req.TelegramID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, prize)
}
