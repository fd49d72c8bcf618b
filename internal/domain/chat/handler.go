package chat

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/conversations", h.CreateConversation)
	api.GET("/conversations", h.ListConversations)
	api.GET("/conversations/:id", h.GetConversation)
	api.PUT("/conversations/:id/status", h.UpdateStatus)
	api.DELETE("/conversations/:id", h.DeleteConversation)
	api.POST("/conversations/:id/messages", h.SendMessage)
	api.GET("/conversations/:id/messages", h.ListMessages)
}

func (h *Handler) CreateConversation(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}
	var req CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	conv, err := h.svc.CreateConversation(c.Request().Context(), userID, req.Title)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, conv)
}

func (h *Handler) ListConversations(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListConversations(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetConversation(c echo.Context) error {
	userID, id, err := h.ids(c)
	if err != nil {
		return err
	}
	conv, err := h.svc.GetConversation(c.Request().Context(), userID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, conv)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	userID, id, err := h.ids(c)
	if err != nil {
		return err
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	conv, err := h.svc.UpdateStatus(c.Request().Context(), userID, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, conv)
}

func (h *Handler) DeleteConversation(c echo.Context) error {
	userID, id, err := h.ids(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteConversation(c.Request().Context(), userID, id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SendMessage(c echo.Context) error {
	userID, id, err := h.ids(c)
	if err != nil {
		return err
	}
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.Send(c.Request().Context(), userID, id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotActive):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListMessages(c echo.Context) error {
	userID, id, err := h.ids(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListMessages(c.Request().Context(), userID, id, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ids(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := auth.UserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return userID, id, nil
}
