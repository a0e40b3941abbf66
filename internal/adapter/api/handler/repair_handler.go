package handler

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/response"
)

type RepairHandler struct {
	repairUseCase  *usecase.RepairUseCase
	profileUseCase *usecase.ProfileUseCase
}

func NewRepairHandler(repairUseCase *usecase.RepairUseCase, profileUseCase *usecase.ProfileUseCase) *RepairHandler {
	return &RepairHandler{
		repairUseCase:  repairUseCase,
		profileUseCase: profileUseCase,
	}
}

// CheckConnection probes the backend and attempts one repair if the probe
// fails.
func (h *RepairHandler) CheckConnection(c echo.Context) error {
	status := h.repairUseCase.CheckConnection(c.Request().Context())
	return response.Success(c, status)
}

// RepairProfile recreates the caller's profile row if it went missing.
func (h *RepairHandler) RepairProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.profileUseCase.RepairProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}
