package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/internal/utils"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// AdviceHandler handles HTTP requests for spending advice
type AdviceHandler struct {
	adviceUC finance.AdviceUC
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(adviceUC finance.AdviceUC) *AdviceHandler {
	return &AdviceHandler{adviceUC: adviceUC}
}

// Advise handles spending advice requests
func (h *AdviceHandler) Advise(c echo.Context) error {
	var req models.AdviceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.UserID == uuid.Nil {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	advice, err := h.adviceUC.Advise(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, finance.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to produce advice", logger.String("user_id", req.UserID.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to produce advice")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Advice produced successfully", advice)
}
