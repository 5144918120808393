package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dah-coin-engine/config"
	httpHandler "dah-coin-engine/internal/adapter/http/handler"
	redisStorage "dah-coin-engine/internal/adapter/storage/redis"
	"dah-coin-engine/internal/core/ports"
	"dah-coin-engine/internal/service"
	"dah-coin-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack with in-memory storage connected
// via miniredis. This exercises the real HTTP layer, middleware, handlers,
// the economy service, and the Redis rate limit store end-to-end.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	economyCfg := config.EconomyConfig{DailyCap: 100, MonthlyCap: 3000}

	walletRepo := newInMemoryWalletRepo()
	txRepo := newInMemoryTransactionRepo()
	transactor := newInMemoryTransactor()

	log := logger.New("error", false)
	economySvc := service.NewEconomyService(
		walletRepo, txRepo, transactor,
		service.NewRateTable(),
		service.NewCapEnforcer(economyCfg),
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EconomySvc:     economySvc,
		EconomyCfg:     economyCfg,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server: server,
		redis:  mr,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) postJSON(t *testing.T, path string, body map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (a *testApp) getJSON(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.getJSON(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_MinorCreditFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// A 16-year-old posts; the 5-coin reward splits 3 available / 2 locked.
	resp, body := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
		"user_id": "mina16",
		"age":     16,
		"action":  "post_created",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["credited_amount"])
	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, float64(3), wallet["available"])
	assert.Equal(t, float64(2), wallet["locked_for_minor"])

	// Snapshot agrees with the credit result.
	resp, body = app.getJSON(t, "/api/v1/wallets/mina16")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["total"])

	// The ledger holds exactly one positive entry.
	resp, body = app.getJSON(t, "/api/v1/wallets/mina16/transactions")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	items := data["items"].([]interface{})
	entry := items[0].(map[string]interface{})
	assert.Equal(t, float64(5), entry["amount"])
	assert.Equal(t, "Earned for post_created", entry["description"])

	// Usage reflects the 5 coins against the caps.
	resp, body = app.getJSON(t, "/api/v1/wallets/mina16/usage")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["daily_used"])
	assert.Equal(t, float64(100), data["daily_cap"])
	assert.Equal(t, float64(5), data["monthly_used"])
}

func TestIntegration_DailyCapTruncatesThenZeroes(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Ten daily logins consume the whole 100-coin daily cap.
	for i := 0; i < 10; i++ {
		resp, body := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
			"user_id": "grinder",
			"age":     25,
			"action":  "daily_login",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(10), data["credited_amount"], "credit %d", i+1)
	}

	// The next attempt succeeds but credits nothing.
	resp, body := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
		"user_id": "grinder",
		"age":     25,
		"action":  "daily_login",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["credited_amount"])
	assert.Equal(t, true, data["capped"])
	assert.Equal(t, "daily", data["cap_reason"])
	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, float64(100), wallet["available"])
}

func TestIntegration_OverridePartiallyCapped(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// 80 earned, then a 50-coin quest award truncates to the 20-coin headroom.
	for i := 0; i < 10; i++ {
		resp, _ := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
			"user_id": "quester",
			"age":     30,
			"action":  "video_posted", // 8 coins
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
		"user_id":         "quester",
		"age":             30,
		"amount_override": 50,
		"description":     "Treasure hunt quest",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(20), data["credited_amount"])
	assert.Equal(t, true, data["capped"])
	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, float64(100), wallet["available"])
}

func TestIntegration_SpendFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
		"user_id":         "buyer",
		"age":             28,
		"amount_override": 50,
		"description":     "Arcade winnings",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := app.postJSON(t, "/api/v1/coins/spend", map[string]interface{}{
		"user_id": "buyer",
		"amount":  20,
		"reason":  "profile frame",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, float64(30), wallet["available"])
	tx := data["transaction"].(map[string]interface{})
	assert.Equal(t, float64(-20), tx["amount"])

	// Overspend fails and leaves the balance untouched.
	resp, body = app.postJSON(t, "/api/v1/coins/spend", map[string]interface{}{
		"user_id": "buyer",
		"amount":  31,
		"reason":  "sticker pack",
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "COIN_003", body["error_code"])

	_, body = app.getJSON(t, "/api/v1/wallets/buyer")
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(30), data["available"])
}

func TestIntegration_LockedBalanceNotSpendable(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// A 15-year-old earns 100: 50 available, 50 locked until adulthood.
	resp, body := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
		"user_id":         "saver15",
		"age":             15,
		"amount_override": 100,
		"description":     "Marketplace sale",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	wallet := data["wallet"].(map[string]interface{})
	require.Equal(t, float64(50), wallet["available"])
	require.Equal(t, float64(50), wallet["locked_for_minor"])

	// 60 exceeds the available half even though the total is 100.
	resp, body = app.postJSON(t, "/api/v1/coins/spend", map[string]interface{}{
		"user_id": "saver15",
		"amount":  60,
		"reason":  "gift",
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "COIN_003", body["error_code"])

	// The available half spends fine.
	resp, _ = app.postJSON(t, "/api/v1/coins/spend", map[string]interface{}{
		"user_id": "saver15",
		"amount":  50,
		"reason":  "gift",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestIntegration_CreditErrors(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	cases := []struct {
		name     string
		body     map[string]interface{}
		wantCode string
	}{
		{
			name:     "unknown action",
			body:     map[string]interface{}{"user_id": "alice", "age": 25, "action": "story_shared"},
			wantCode: "COIN_001",
		},
		{
			name:     "underage",
			body:     map[string]interface{}{"user_id": "kiddo", "age": 12, "action": "post_created"},
			wantCode: "COIN_002",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := app.postJSON(t, "/api/v1/coins/credit", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.wantCode, body["error_code"])
		})
	}
}

func TestIntegration_UnknownUserReadsAsZeroWallet(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.getJSON(t, "/api/v1/wallets/ghost")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ghost", data["user_id"])
	assert.Equal(t, float64(0), data["available"])
	assert.Equal(t, float64(0), data["total"])

	resp, body = app.getJSON(t, "/api/v1/wallets/ghost/transactions")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])
}

func TestIntegration_HistoryOrderAndLimit(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	actions := []string{"post_created", "comment_posted", "like_given"}
	for _, action := range actions {
		resp, _ := app.postJSON(t, "/api/v1/coins/credit", map[string]interface{}{
			"user_id": "poster",
			"age":     22,
			"action":  action,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := app.getJSON(t, fmt.Sprintf("/api/v1/wallets/poster/transactions?limit=%d", 2))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["count"])
}
