package handler

import (
	"dah-coin-engine/internal/adapter/http/dto"
	"dah-coin-engine/internal/core/domain"
	"dah-coin-engine/internal/core/ports"
	"dah-coin-engine/pkg/apperror"
	"dah-coin-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// EconomyHandler handles coin credit and spend endpoints.
type EconomyHandler struct {
	economySvc ports.EconomyService
}

// NewEconomyHandler creates a new EconomyHandler.
func NewEconomyHandler(economySvc ports.EconomyService) *EconomyHandler {
	return &EconomyHandler{economySvc: economySvc}
}

// CreditCoins handles POST /api/v1/coins/credit.
func (h *EconomyHandler) CreditCoins(c *gin.Context) {
	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if req.Action == "" && req.AmountOverride == nil {
		response.Error(c, apperror.Validation("either action or amount_override is required"))
		return
	}

	result, err := h.economySvc.CreditCoins(c.Request.Context(), ports.CreditRequest{
		UserID:         req.UserID,
		Age:            req.Age,
		Action:         domain.ActionKind(req.Action),
		AmountOverride: req.AmountOverride,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreditResponse{
		Wallet:         toWalletResponse(result.Wallet),
		CreditedAmount: result.CreditedAmount,
		Capped:         result.Capped,
		CapReason:      string(result.CapReason),
	})
}

// SpendCoins handles POST /api/v1/coins/spend.
func (h *EconomyHandler) SpendCoins(c *gin.Context) {
	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.economySvc.SpendCoins(c.Request.Context(), ports.SpendRequest{
		UserID: req.UserID,
		Amount: req.Amount,
		Reason: req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SpendResponse{
		Wallet:      toWalletResponse(result.Wallet),
		Transaction: toTransactionResponse(result.Transaction),
	})
}

// toWalletResponse converts domain.Wallet to DTO.
func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		UserID:         w.UserID,
		Available:      w.Available,
		LockedForMinor: w.LockedForMinor,
		Total:          w.Total(),
		UpdatedAt:      w.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// toTransactionResponse converts domain.Transaction to DTO.
func toTransactionResponse(t *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID.String(),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
