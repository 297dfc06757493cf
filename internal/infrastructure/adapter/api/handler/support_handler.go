package handler

import (
	"net/http"

	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	usecaseport "github.com/salapeso/savings-api/internal/domain/port/usecase"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/dto"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SupportHandler handles support-heart HTTP requests
type SupportHandler struct {
	supportService usecaseport.SupportUseCase
	logger         coreport.Logger
}

// NewSupportHandler creates a new support handler instance
func NewSupportHandler(supportService usecaseport.SupportUseCase, logger coreport.Logger) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		logger:         logger,
	}
}

// Status handles GET /support. Anonymous callers get the count with
// hasHearted always false.
func (h *SupportHandler) Status(c *gin.Context) {
	status, err := h.supportService.Status(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.SupportResponse{
		Count:      status.Count,
		HasHearted: status.HasHearted,
	}))
}

// Toggle handles POST /support
func (h *SupportHandler) Toggle(c *gin.Context) {
	status, err := h.supportService.Toggle(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.SupportResponse{
		Count:      status.Count,
		HasHearted: status.HasHearted,
	}))
}
