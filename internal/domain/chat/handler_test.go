package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService(nil)
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func doJSON(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateConversation(t *testing.T) {
	h, e := newTestHandler()
	c, rec := doJSON(e, http.MethodPost, `{"title":"sore throat"}`)
	c.Set("user_id", uuid.New())
	if err := h.CreateConversation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var conv Conversation
	if err := json.Unmarshal(rec.Body.Bytes(), &conv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if conv.Title != "sore throat" || conv.Status != StatusActive {
		t.Errorf("unexpected conversation: %+v", conv)
	}
}

func TestHandler_SendMessage(t *testing.T) {
	h, e := newTestHandler()
	userID := uuid.New()
	conv, _ := h.svc.CreateConversation(context.Background(), userID, "t")

	c, rec := doJSON(e, http.MethodPost, `{"content":"I have a fever"}`)
	c.Set("user_id", userID)
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())
	if err := h.SendMessage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var resp SendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply == nil || resp.Reply.Source != SourceTriage {
		t.Errorf("unexpected reply: %+v", resp.Reply)
	}
}

func TestHandler_SendMessage_NotFound(t *testing.T) {
	h, e := newTestHandler()
	c, _ := doJSON(e, http.MethodPost, `{"content":"hello"}`)
	c.Set("user_id", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	err := h.SendMessage(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_SendMessage_Conflict(t *testing.T) {
	h, e := newTestHandler()
	userID := uuid.New()
	conv, _ := h.svc.CreateConversation(context.Background(), userID, "t")
	if _, err := h.svc.UpdateStatus(context.Background(), userID, conv.ID, StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}

	c, _ := doJSON(e, http.MethodPost, `{"content":"hello"}`)
	c.Set("user_id", userID)
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())
	err := h.SendMessage(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_ListMessages(t *testing.T) {
	h, e := newTestHandler()
	userID := uuid.New()
	conv, _ := h.svc.CreateConversation(context.Background(), userID, "t")
	if _, err := h.svc.Send(context.Background(), userID, conv.ID, "headache"); err != nil {
		t.Fatalf("send: %v", err)
	}

	c, rec := doJSON(e, http.MethodGet, "")
	c.Set("user_id", userID)
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())
	if err := h.ListMessages(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected 2 messages, got %d", resp.Total)
	}
}

func TestHandler_UpdateStatus_Invalid(t *testing.T) {
	h, e := newTestHandler()
	userID := uuid.New()
	conv, _ := h.svc.CreateConversation(context.Background(), userID, "t")

	c, _ := doJSON(e, http.MethodPut, `{"status":"bogus"}`)
	c.Set("user_id", userID)
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())
	err := h.UpdateStatus(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_InvalidID(t *testing.T) {
	h, e := newTestHandler()
	c, _ := doJSON(e, http.MethodGet, "")
	c.Set("user_id", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	err := h.GetConversation(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
