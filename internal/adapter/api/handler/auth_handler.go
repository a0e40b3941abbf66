package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone" validate:"required"`
	Location   string `json:"location" validate:"required"`
	SellerType string `json:"seller_type" validate:"omitempty,oneof=individual dealer"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Location:   req.Location,
		SellerType: req.SellerType,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.authUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "If the email is registered, a reset link has been sent",
	})
}

func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.UpdatePassword(c.Request().Context(), uid, req.NewPassword); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Password updated"})
}
