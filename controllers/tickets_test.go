package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/bellapacxx/lottery-backend/config"
	"github.com/bellapacxx/lottery-backend/engine"
	"github.com/bellapacxx/lottery-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubClock struct {
	mu  sync.Mutex
	now int64
}

func (c *stubClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) set(now int64) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// newWalletRouter backs the user/transaction tables with an in-memory
// sqlite database so the purchase and refund money flows run for real.
func newWalletRouter(t *testing.T, opts engine.Options) (*gin.Engine, *engine.Engine, *stubClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Transaction{}))
	config.DB = db
	t.Cleanup(func() { config.DB = nil })

	clock := &stubClock{now: 50}
	opts.Clock = clock
	eng := engine.New(nil, opts)
	Engine = eng

	r := gin.New()
	api := r.Group("/api")
	api.POST("/lotteries/:id/tickets", BuyTicket)
	api.POST("/lotteries/:id/refund", RefundTicket)
	return r, eng, clock
}

func seedUser(t *testing.T, telegramID, balance int64) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.User{
		TelegramID: telegramID,
		Name:       "buyer",
		Balance:    balance,
	}).Error)
}

func userBalance(t *testing.T, telegramID int64) int64 {
	t.Helper()
	var user models.User
	require.NoError(t, config.DB.Where("telegram_id = ?", telegramID).First(&user).Error)
	return user.Balance
}

func ledgerRows(t *testing.T, telegramID int64) []models.Transaction {
	t.Helper()
	var rows []models.Transaction
	require.NoError(t, config.DB.Where("user_id = ?", telegramID).Order("id").Find(&rows).Error)
	return rows
}

func openLottery(t *testing.T, eng *engine.Engine) *models.Lottery {
	t.Helper()
	lottery, _, err := eng.Create(engine.CreateParams{
		MinParticipants: 1,
		TicketPrice:     100,
		NumberRange:     1000,
		StartTime:       100,
		EndTime:         200,
		CreatorID:       1,
	})
	require.NoError(t, err)
	return lottery
}

func TestBuyTicketDebitsBalance(t *testing.T) {
	r, eng, _ := newWalletRouter(t, engine.Options{})
	seedUser(t, 2, 500)
	lottery := openLottery(t, eng)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.Equal(t, int64(400), userBalance(t, 2))
	rows := ledgerRows(t, 2)
	require.Len(t, rows, 1)
	require.Equal(t, models.PurchaseTransaction, rows[0].Type)
	require.Equal(t, int64(100), rows[0].Amount)
	require.Equal(t, int64(400), rows[0].BalanceAfter)
}

func TestBuyTicketRollsBackDebitOnEngineRejection(t *testing.T) {
	r, eng, _ := newWalletRouter(t, engine.Options{})
	seedUser(t, 2, 500)
	lottery := openLottery(t, eng)

	first := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// The same number again: the engine rejects it, and the staged debit
	// must be rolled back with it.
	second := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
	})
	require.Equal(t, http.StatusConflict, second.Code)

	require.Equal(t, int64(400), userBalance(t, 2))
	require.Len(t, ledgerRows(t, 2), 1)
}

func TestBuyTicketInsufficientBalance(t *testing.T) {
	r, eng, _ := newWalletRouter(t, engine.Options{})
	seedUser(t, 2, 50)
	lottery := openLottery(t, eng)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, int64(50), userBalance(t, 2))
	require.Empty(t, ledgerRows(t, 2))
}

func TestBuyTicketDebitsOnlyPriceWithChange(t *testing.T) {
	r, eng, _ := newWalletRouter(t, engine.Options{ReturnChange: true})
	seedUser(t, 2, 500)
	lottery := openLottery(t, eng)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
		"amount":        150,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Only the ticket price leaves the account.
	require.Equal(t, int64(400), userBalance(t, 2))
	lot, err := eng.LotteryView(lottery.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), lot.ProceedsUnits)
}

func TestRefundTicketCreditsExactPrice(t *testing.T) {
	r, eng, clock := newWalletRouter(t, engine.Options{})
	seedUser(t, 2, 500)
	lottery := openLottery(t, eng)

	buy := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
	})
	require.Equal(t, http.StatusCreated, buy.Code)
	var ticket models.Ticket
	require.NoError(t, json.Unmarshal(buy.Body.Bytes(), &ticket))

	// Before the grace period the staged credit must be rolled back.
	early := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/refund", gin.H{
		"telegram_id": 2,
		"ticket_id":   ticket.ID,
	})
	require.Equal(t, http.StatusConflict, early.Code)
	require.Equal(t, int64(400), userBalance(t, 2))

	clock.set(lottery.EndTime + engine.DefaultGracePeriodSec + 1)
	late := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/refund", gin.H{
		"telegram_id": 2,
		"ticket_id":   ticket.ID,
	})
	require.Equal(t, http.StatusOK, late.Code)

	require.Equal(t, int64(500), userBalance(t, 2))
	rows := ledgerRows(t, 2)
	require.Len(t, rows, 2)
	require.Equal(t, models.RefundTransaction, rows[1].Type)
	require.Equal(t, int64(100), rows[1].Amount)
}
