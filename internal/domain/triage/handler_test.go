package triage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postAnalyze(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/triage/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, NewHandler().Analyze(c)
}

func TestAnalyze_FromMessage(t *testing.T) {
	rec, err := postAnalyze(t, `{"message":"I have had a fever and a cough for two days"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Analysis.Severity != SeverityModerate {
		t.Errorf("expected moderate, got %s", resp.Analysis.Severity)
	}
	if !strings.Contains(resp.Text, "ANALYSIS") {
		t.Error("expected rendered text block")
	}
}

func TestAnalyze_WithSymptomsAndContext(t *testing.T) {
	rec, err := postAnalyze(t, `{"symptoms":["fever","vomiting"],"context":{"age":70,"known_conditions":["diabetes"]}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Analysis.Severity != SeverityHigh {
		t.Errorf("expected high with context boost, got %s", resp.Analysis.Severity)
	}
}

func TestAnalyze_EmptyBody(t *testing.T) {
	rec, err := postAnalyze(t, `{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Analysis.Severity != SeverityLow || resp.Analysis.Emergency {
		t.Errorf("expected graceful low-severity result, got %+v", resp.Analysis)
	}
}
