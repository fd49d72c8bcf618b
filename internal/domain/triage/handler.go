package triage

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/triage/analyze", h.Analyze)
}

// AnalyzeRequest accepts either pre-extracted symptom phrases or a raw
// message to scan.
type AnalyzeRequest struct {
	Message  string         `json:"message"`
	Symptoms []string       `json:"symptoms"`
	Context  *HealthContext `json:"context"`
}

type AnalyzeResponse struct {
	Analysis Analysis `json:"analysis"`
	Text     string   `json:"text"`
}

func (h *Handler) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	symptoms := req.Symptoms
	if len(symptoms) == 0 && req.Message != "" {
		symptoms = ExtractSymptoms(req.Message)
	}

	analysis := Classify(symptoms, req.Context)
	return c.JSON(http.StatusOK, AnalyzeResponse{
		Analysis: analysis,
		Text:     RenderText(analysis),
	})
}
