package handler

import (
	"strconv"

	"dah-coin-engine/config"
	"dah-coin-engine/internal/adapter/http/dto"
	"dah-coin-engine/internal/core/ports"
	"dah-coin-engine/pkg/apperror"
	"dah-coin-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 200

// WalletHandler handles wallet read endpoints.
type WalletHandler struct {
	economySvc ports.EconomyService
	economyCfg config.EconomyConfig
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(economySvc ports.EconomyService, economyCfg config.EconomyConfig) *WalletHandler {
	return &WalletHandler{economySvc: economySvc, economyCfg: economyCfg}
}

// GetWallet handles GET /api/v1/wallets/:user_id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID := c.Param("user_id")

	wallet, err := h.economySvc.GetWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// GetTransactions handles GET /api/v1/wallets/:user_id/transactions.
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := c.Param("user_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryLimit {
			response.Error(c, apperror.Validation("limit must be an integer between 1 and 200"))
			return
		}
		limit = parsed
	}

	entries, err := h.economySvc.GetTransactionHistory(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toTransactionResponse(&entries[i]))
	}

	response.OK(c, dto.TransactionListResponse{
		Items: items,
		Count: len(items),
	})
}

// GetUsage handles GET /api/v1/wallets/:user_id/usage.
func (h *WalletHandler) GetUsage(c *gin.Context) {
	userID := c.Param("user_id")

	daily, err := h.economySvc.GetDailyUsed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	monthly, err := h.economySvc.GetMonthlyUsed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UsageResponse{
		DailyUsed:   daily,
		DailyCap:    h.economyCfg.DailyCap,
		MonthlyUsed: monthly,
		MonthlyCap:  h.economyCfg.MonthlyCap,
	})
}
