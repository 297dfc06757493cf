package handler

import (
	"net/http"
	"strconv"

	"github.com/salapeso/savings-api/internal/domain/entity"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	usecaseport "github.com/salapeso/savings-api/internal/domain/port/usecase"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/dto"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SavingsHandler handles savings goal and ledger HTTP requests
type SavingsHandler struct {
	savingsService usecaseport.SavingsUseCase
	logger         coreport.Logger
}

// NewSavingsHandler creates a new savings handler instance
func NewSavingsHandler(savingsService usecaseport.SavingsUseCase, logger coreport.Logger) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
		logger:         logger,
	}
}

// ListWallets handles GET /savings/wallets
func (h *SavingsHandler) ListWallets(c *gin.Context) {
	wallets, err := h.savingsService.ListWallets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToWalletResponses(wallets)))
}

// ListGoals handles GET /savings/goals
func (h *SavingsHandler) ListGoals(c *gin.Context) {
	goals, err := h.savingsService.ListGoals(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToGoalResponses(goals)))
}

// GetGoal handles GET /savings/goals/:goalId
func (h *SavingsHandler) GetGoal(c *gin.Context) {
	goal, err := h.savingsService.GetGoal(c.Request.Context(), middleware.UserID(c), c.Param("goalId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToGoalResponse(goal)))
}

// CreateGoal handles POST /savings/goals
func (h *SavingsHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	input := usecaseport.CreateGoalInput{
		UserID:   middleware.UserID(c),
		WalletID: req.WalletID,
		Name:     req.Name,
	}

	if req.TargetAmount != nil {
		target, err := entity.CentsFromDecimal(*req.TargetAmount)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		input.TargetAmount = &target
	}
	if req.InitialAmount != nil {
		initial, err := entity.CentsFromDecimal(*req.InitialAmount)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		input.InitialAmount = initial
	}

	goal, err := h.savingsService.CreateGoal(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToGoalResponse(goal)))
}

// EditGoal handles PATCH /savings/goals/:goalId
func (h *SavingsHandler) EditGoal(c *gin.Context) {
	var req dto.EditGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	input := usecaseport.EditGoalInput{
		UserID: middleware.UserID(c),
		GoalID: c.Param("goalId"),
		Name:   req.Name,
	}

	if req.TargetAmount != nil {
		target, err := entity.CentsFromDecimal(*req.TargetAmount)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		input.TargetAmount = &target
	}
	if req.CurrentAmount != nil {
		current, err := entity.CentsFromDecimal(*req.CurrentAmount)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		input.CurrentAmount = &current
	}

	goal, err := h.savingsService.EditGoal(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToGoalResponse(goal)))
}

// DeleteGoal handles DELETE /savings/goals/:goalId
func (h *SavingsHandler) DeleteGoal(c *gin.Context) {
	err := h.savingsService.DeleteGoal(c.Request.Context(), middleware.UserID(c), c.Param("goalId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Goal deleted"))
}

// AddEntry handles POST /savings/goals/:goalId/entries
func (h *SavingsHandler) AddEntry(c *gin.Context) {
	var req dto.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.CentsFromDecimal(req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	entry, err := h.savingsService.AddEntry(c.Request.Context(), middleware.UserID(c), c.Param("goalId"), amount, req.Note)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToEntryResponse(entry)))
}

// ListTransactions handles GET /savings/transactions?limit=
func (h *SavingsHandler) ListTransactions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := h.savingsService.ListTransactions(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToEntryResponses(entries)))
}

// Summary handles GET /savings/summary
func (h *SavingsHandler) Summary(c *gin.Context) {
	summary, err := h.savingsService.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSummaryResponse(summary)))
}
