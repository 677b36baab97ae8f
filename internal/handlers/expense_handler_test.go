package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendbot/internal/errors"
	"spendbot/internal/middleware"
	"spendbot/internal/models"
	"spendbot/internal/pagination"
	"spendbot/internal/services"
	"spendbot/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock expense service ---

type mockExpenseService struct {
	recordExpenseFn  func(username, rawText string) (*models.Record, error)
	getUserRecordsFn func(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Record], error)
}

func (m *mockExpenseService) RecordExpense(username, rawText string) (*models.Record, error) {
	if m.recordExpenseFn != nil {
		return m.recordExpenseFn(username, rawText)
	}
	return &models.Record{}, nil
}

func (m *mockExpenseService) GetUserRecords(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Record], error) {
	if m.getUserRecordsFn != nil {
		return m.getUserRecordsFn(username, page)
	}
	resp := pagination.NewPageResponse([]models.Record{}, 1, 20, 0)
	return &resp, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/expenses", handler.CreateExpense)
	r.GET("/records", handler.GetUserRecords)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			recordExpenseFn: func(username, rawText string) (*models.Record, error) {
				return &models.Record{
					ID:       7,
					Title:    "мясо",
					Amount:   1500,
					Category: models.Category{Name: "food"},
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		body := `{"username": "alice", "text": "мясо 1500"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Record RecordResponse `json:"record"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Record.Amount != 1500 || resp.Record.Category != "food" {
			t.Errorf("record = %+v", resp.Record)
		}
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		for _, body := range []string{
			`{}`,
			`{"username": "alice"}`,
			`{"text": "мясо 1500"}`,
			`{"username": "has space", "text": "мясо"}`,
			`not json`,
		} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("body %q: status = %d, want 400", body, w.Code)
			}
		}
	})

	t.Run("maps service failure to 500 without detail", func(t *testing.T) {
		svc := &mockExpenseService{
			recordExpenseFn: func(username, rawText string) (*models.Record, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, http.ErrHandlerTimeout)
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{"username":"alice","text":"x 1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		if strings.Contains(w.Body.String(), http.ErrHandlerTimeout.Error()) {
			t.Error("internal error detail leaked into the response")
		}
	})
}

func TestExpenseHandler_GetUserRecords(t *testing.T) {
	t.Run("returns 404 for unknown user", func(t *testing.T) {
		svc := &mockExpenseService{
			getUserRecordsFn: func(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Record], error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/records?username=nobody", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if !strings.Contains(w.Body.String(), "USER_NOT_FOUND") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("returns 400 without username", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/records", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
