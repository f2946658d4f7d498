package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/xiaot623/chatshare/internal/adapter/llm"
	"github.com/xiaot623/chatshare/internal/config"
	"github.com/xiaot623/chatshare/internal/domain"
	"github.com/xiaot623/chatshare/internal/repository"
	"github.com/xiaot623/chatshare/internal/service"
	"github.com/xiaot623/chatshare/policy"
	"github.com/xiaot623/chatshare/tests/helpers"
)

type testDeps struct {
	sessions  *repository.SQLiteStore
	failing   *helpers.FailingSessionStore
	objects   *helpers.FailingObjectStore
	generator *llm.MockClient
}

func newTestHandler(t *testing.T) (*Handler, *testDeps) {
	t.Helper()
	return newTestHandlerWithPolicy(t, policy.DefaultPolicy)
}

func newTestHandlerWithPolicy(t *testing.T, policyContent string) (*Handler, *testDeps) {
	t.Helper()
	cfg := &config.Config{FrontendBaseURL: "https://chat.example.com"}
	deps := &testDeps{
		sessions:  helpers.NewTestSQLiteStore(t),
		objects:   &helpers.FailingObjectStore{Store: helpers.NewTestObjectStore(t)},
		generator: llm.NewMockClient(),
	}
	deps.failing = &helpers.FailingSessionStore{SessionStore: deps.sessions}
	policyEngine := helpers.NewTestPolicyEngine(t, policyContent)
	svc := service.New(deps.failing, repository.NewChatConfigStore(deps.objects), deps.generator, cfg, policyEngine)
	return NewHandler(svc), deps
}

func newTestServer(t *testing.T) (*echo.Echo, *testDeps) {
	t.Helper()
	return newTestServerWithPolicy(t, policy.DefaultPolicy)
}

func newTestServerWithPolicy(t *testing.T, policyContent string) (*echo.Echo, *testDeps) {
	t.Helper()
	h, deps := newTestHandlerWithPolicy(t, policyContent)
	e := echo.New()
	h.RegisterRoutes(e)
	return e, deps
}

func assertInternalError(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
	}
	assertJSONWithCORS(t, rec)
	if body := decodeBody(t, rec); body["error"] != "Internal server error" || len(body) != 1 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func assertJSONWithCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if origin := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); origin != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", origin)
	}
}

func seedSession(t *testing.T, deps *testDeps, messages ...domain.Message) *domain.Session {
	t.Helper()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	session := &domain.Session{
		SessionID:    "s1",
		ChatConfigID: "c1",
		Title:        "Pirate",
		Model:        "gemini-2.5-flash",
		SystemPrompt: "Talk like a pirate.",
		Temperature:  decimal.RequireFromString("0.4"),
		Messages:     append([]domain.Message{}, messages...),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	if err := deps.sessions.PutSession(context.Background(), session); err != nil {
		t.Fatalf("PutSession failed: %v", err)
	}
	return session
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	assertJSONWithCORS(t, rec)
	if decodeBody(t, rec)["status"] != "healthy" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPreflight(t *testing.T) {
	e, _ := newTestServer(t)

	cases := []struct {
		path    string
		methods string
	}{
		{"/chat-configs", "POST,OPTIONS"},
		{"/chat-configs/c1", "GET,PUT,POST,OPTIONS"},
		{"/sessions", "POST,OPTIONS"},
		{"/sessions/s1/settings", "PUT,POST,OPTIONS"},
		{"/messages", "POST,OPTIONS"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := doRequest(e, http.MethodOptions, tc.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			assertJSONWithCORS(t, rec)
			if got := rec.Header().Get(echo.HeaderAccessControlAllowMethods); got != tc.methods {
				t.Fatalf("expected methods %q, got %q", tc.methods, got)
			}
			if got := rec.Header().Get(echo.HeaderAccessControlAllowHeaders); got != "Content-Type" {
				t.Fatalf("expected allow headers Content-Type, got %q", got)
			}
		})
	}
}

func TestBindJSONIgnoresContentType(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"session_id":"s1"}`))
	req.Header.Set(echo.HeaderContentType, "text/plain")
	c := e.NewContext(req, httptest.NewRecorder())

	var out SendMessageRequest
	if err := bindJSON(c, &out); err != nil {
		t.Fatalf("bindJSON failed: %v", err)
	}
	if out.SessionID != "s1" {
		t.Fatalf("unexpected request: %+v", out)
	}
}
