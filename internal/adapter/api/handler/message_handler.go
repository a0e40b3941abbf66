package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexar/internal/usecase"
	"nexar/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

func (h *MessageHandler) Send(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Send(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *MessageHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.messageUseCase.ListForUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.messageUseCase.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Marked as read"})
}
