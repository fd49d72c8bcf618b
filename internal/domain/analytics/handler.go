package analytics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/analytics/summary", h.Summary)
	api.GET("/analytics/symptoms", h.TopSymptoms)
	api.GET("/analytics/severity", h.SeverityTimeline)
}

func (h *Handler) Summary(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}
	sum, err := h.svc.Summary(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) TopSymptoms(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.TopSymptoms(c.Request().Context(), userID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []SymptomFrequency{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SeverityTimeline(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}
	days, _ := strconv.Atoi(c.QueryParam("days"))
	items, err := h.svc.SeverityTimeline(c.Request().Context(), userID, days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []SeverityPoint{}
	}
	return c.JSON(http.StatusOK, items)
}
