package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"oddly-ddd/internal/example"
	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/response"
	"oddly-ddd/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase records the last call and returns the configured results.
type mockUseCase struct {
	err error

	gotScope  scope.Scope
	gotCreate example.CreateInput
	gotList   example.ListInput
	gotUpdate example.UpdateInput
	gotID     string

	view example.View
	list example.ListOutput
}

func (m *mockUseCase) Create(_ context.Context, sc scope.Scope, in example.CreateInput) (example.CreateOutput, error) {
	m.gotScope, m.gotCreate = sc, in
	return example.CreateOutput{Example: m.view}, m.err
}

func (m *mockUseCase) Update(_ context.Context, sc scope.Scope, in example.UpdateInput) error {
	m.gotScope, m.gotUpdate = sc, in
	return m.err
}

func (m *mockUseCase) Delete(_ context.Context, sc scope.Scope, id string) error {
	m.gotScope, m.gotID = sc, id
	return m.err
}

func (m *mockUseCase) Activate(_ context.Context, sc scope.Scope, id string) error {
	m.gotScope, m.gotID = sc, id
	return m.err
}

func (m *mockUseCase) Deactivate(_ context.Context, sc scope.Scope, id string) error {
	m.gotScope, m.gotID = sc, id
	return m.err
}

func (m *mockUseCase) Detail(_ context.Context, sc scope.Scope, id string) (example.DetailOutput, error) {
	m.gotScope, m.gotID = sc, id
	return example.DetailOutput{Example: m.view}, m.err
}

func (m *mockUseCase) List(_ context.Context, sc scope.Scope, in example.ListInput) (example.ListOutput, error) {
	m.gotScope, m.gotList = sc, in
	return m.list, m.err
}

var testScope = scope.Scope{UserID: "u1", CorrelationID: "corr-1"}

func newTestRouter(uc example.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc, true)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), testScope))
	})
	g := r.Group("/v1/example")
	g.GET("", h.List)
	g.GET("/:id", h.Detail)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/activate", h.Activate)
	g.POST("/:id/deactivate", h.Deactivate)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var resp response.ErrorResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return resp.Error
}

func TestCreate(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := &mockUseCase{view: example.View{ID: "e1", Name: "Widget", OwnerID: "u1", IsActive: true, StatusText: "Active", Version: 1, CreatedAt: created, UpdatedAt: created}}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/v1/example", `{"name":"Widget","description":"d"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if uc.gotCreate.Name != "Widget" || uc.gotCreate.Description != "d" || uc.gotScope != testScope {
		t.Errorf("unexpected use case call %+v scope %+v", uc.gotCreate, uc.gotScope)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["id"] != "e1" || body["isActive"] != true || body["statusText"] != "Active" {
		t.Errorf("unexpected body %v", body)
	}
	if body["createdAt"] != "2025-03-01T09:00:00.000Z" {
		t.Errorf("unexpected createdAt %v", body["createdAt"])
	}
}

func TestCreate_BindingErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"description":"d"}`},
		{"blank name", `{"name":"   "}`},
		{"malformed json", `{"name":`},
		{"wrong type", `{"name":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(newTestRouter(uc), http.MethodPost, "/v1/example", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := decodeError(t, w).Code; got != "ValidationFailed" {
				t.Errorf("expected ValidationFailed, got %s", got)
			}
			if uc.gotCreate.Name != "" {
				t.Error("use case must not be called")
			}
		})
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{example.NewNotFoundError("e1").WithCorrelationID("corr-1"), http.StatusNotFound, "NotFound"},
		{example.NewConflictError("e1", 1), http.StatusConflict, "Conflict"},
		{pkgErrors.New(pkgErrors.CodeForbidden, "no"), http.StatusForbidden, "Forbidden"},
		{pkgErrors.New(pkgErrors.CodeUnauthorized, "no"), http.StatusUnauthorized, "Unauthorized"},
		{example.NewAlreadyExistsError("u1", "Widget"), http.StatusConflict, "AlreadyExists"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := do(newTestRouter(&mockUseCase{err: tt.err}), http.MethodGet, "/v1/example/e1", "")

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			body := decodeError(t, w)
			if body.Code != tt.code || body.Path != "/v1/example/e1" || body.RequestID != "corr-1" {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestUnknownErrorIsHidden(t *testing.T) {
	err := pkgErrors.Wrap(pkgErrors.CodeUnknown, context.DeadlineExceeded, "sql: connection lost").
		WithDetails(map[string]any{"query": "select"})
	w := do(newTestRouter(&mockUseCase{err: err}), http.MethodGet, "/v1/example/e1", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeError(t, w)
	if body.Message != response.DefaultErrorMessage || body.Details != nil {
		t.Errorf("internal details leaked: %+v", body)
	}
}

func TestList_Paging(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"skip take", "?skip=40&take=20", 3, 20},
		{"take only", "?take=10", 1, 10},
		{"page pageSize", "?page=2&pageSize=5", 2, 5},
		{"defaults", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(newTestRouter(uc), http.MethodGet, "/v1/example"+tt.query, "")

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if uc.gotList.Page != tt.page || uc.gotList.PageSize != tt.pageSize {
				t.Errorf("expected page %d size %d, got %+v", tt.page, tt.pageSize, uc.gotList)
			}
		})
	}
}

func TestList_Filters(t *testing.T) {
	uc := &mockUseCase{list: example.ListOutput{
		Items:    []example.View{{ID: "a"}, {ID: "b"}},
		Total:    7,
		Page:     2,
		PageSize: 2,
	}}
	w := do(newTestRouter(uc), http.MethodGet, "/v1/example?ownerId=u2&isActive=false&q=wid", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.gotList.OwnerID != "u2" || uc.gotList.NameContains != "wid" || uc.gotList.IsActive == nil || *uc.gotList.IsActive {
		t.Errorf("unexpected filter %+v", uc.gotList)
	}

	var body listResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Items) != 2 || body.Total != 7 || body.Skip != 2 || body.Take != 2 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestList_InvalidPaging(t *testing.T) {
	for _, q := range []string{"?skip=5&take=10", "?skip=10", "?take=0", "?page=-1"} {
		t.Run(q, func(t *testing.T) {
			w := do(newTestRouter(&mockUseCase{}), http.MethodGet, "/v1/example"+q, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newTestRouter(uc), http.MethodPut, "/v1/example/e1", `{"name":"Gadget","version":3}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
	in := uc.gotUpdate
	if in.ID != "e1" || in.Name == nil || *in.Name != "Gadget" || in.Description != nil || in.Version != 3 {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestUpdate_VersionRequired(t *testing.T) {
	w := do(newTestRouter(&mockUseCase{}), http.MethodPut, "/v1/example/e1", `{"name":"Gadget"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestIDCommands(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/v1/example/e1"},
		{http.MethodPost, "/v1/example/e1/activate"},
		{http.MethodPost, "/v1/example/e1/deactivate"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(newTestRouter(uc), tt.method, tt.path, "")
			if w.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d", w.Code)
			}
			if uc.gotID != "e1" {
				t.Errorf("expected id e1, got %q", uc.gotID)
			}
		})
	}
}
