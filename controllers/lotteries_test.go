package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bellapacxx/lottery-backend/engine"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *engine.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng := engine.New(nil, engine.Options{
		Clock: engine.ClockFunc(func() int64 { return 50 }),
	})
	Engine = eng

	r := gin.New()
	api := r.Group("/api")
	api.POST("/lotteries", CreateLottery)
	api.GET("/lotteries", ListLotteries)
	api.GET("/lotteries/:id", GetLottery)
	api.POST("/lotteries/:id/run", RunLottery)
	api.POST("/lotteries/:id/tickets", BuyTicket)
	return r, eng
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateLotteryEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries", gin.H{
		"telegram_id":       1,
		"min_participants":  1,
		"ticket_price":      100,
		"number_range":      1000,
		"start_time":        100,
		"end_time":          200,
		"prize_description": "a watch",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Lottery struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"lottery"`
		Capability struct {
			ID string `json:"id"`
		} `json:"capability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Lottery.ID)
	require.Equal(t, "open", resp.Lottery.Status)
	require.NotEmpty(t, resp.Capability.ID)

	got := doJSON(t, r, http.MethodGet, "/api/lotteries/"+resp.Lottery.ID, nil)
	require.Equal(t, http.StatusOK, got.Code)
}

func TestCreateLotteryRejectsBadConfiguration(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries", gin.H{
		"telegram_id":      1,
		"min_participants": 1,
		"ticket_price":     100,
		"number_range":     50, // must exceed 100
		"start_time":       100,
		"end_time":         200,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "INVALID_CONFIGURATION", resp["code"])
}

func TestGetLotteryNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/lotteries/no-such-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "RECORD_NOT_FOUND", resp["code"])
}

func TestRunLotteryBeforeWindowCloses(t *testing.T) {
	r, eng := newTestRouter(t)

	lottery, _, err := eng.Create(engine.CreateParams{
		MinParticipants: 1,
		TicketPrice:     100,
		NumberRange:     1000,
		StartTime:       100,
		EndTime:         200,
		CreatorID:       1,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/run", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "NOT_YET_ELIGIBLE", resp["code"])
}

func TestBuyTicketRequiresPersistence(t *testing.T) {
	r, eng := newTestRouter(t)

	lottery, _, err := eng.Create(engine.CreateParams{
		MinParticipants: 1,
		TicketPrice:     100,
		NumberRange:     1000,
		StartTime:       100,
		EndTime:         200,
		CreatorID:       1,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/lotteries/"+lottery.ID+"/tickets", gin.H{
		"telegram_id":   2,
		"ticket_number": 7,
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
