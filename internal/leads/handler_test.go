package leads

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/credibundl/cardstack/internal/auth"
	"github.com/credibundl/cardstack/internal/testutil"
)

const testSecret = "handler-test-secret"

func newTestHandler(t *testing.T) (*Handler, *http.ServeMux) {
	t.Helper()
	repo, err := NewSQLiteRepository(context.Background(), testutil.NewStore(t))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	h := NewHandler(repo, testutil.Logger(), testSecret, 0)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return h, mux
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, "ops", auth.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func TestHandleCreate(t *testing.T) {
	_, mux := newTestHandler(t)

	body := `{"name":"Priya Sharma","email":"priya@example.com","phone":"+91 98765 43210","monthly_income":85000,"source":"compare-page"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"id"`) {
		t.Errorf("response missing assigned id: %s", rec.Body.String())
	}
}

func TestHandleCreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"name":`},
		{"missing email", `{"name":"Priya Sharma"}`},
		{"bad email", `{"name":"Priya Sharma","email":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mux := newTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want problem+json", ct)
			}
		})
	}
}

func TestHandleExportRequiresAdmin(t *testing.T) {
	_, mux := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/export.csv", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleExportCSV(t *testing.T) {
	h, mux := newTestHandler(t)

	lead := validLead()
	if err := h.repo.Create(context.Background(), &lead); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/export.csv", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("CSV has %d rows, want header + 1 lead", len(records))
	}
	if records[0][0] != "id" {
		t.Errorf("header[0] = %q, want %q", records[0][0], "id")
	}
	if records[1][1] != "Priya Sharma" {
		t.Errorf("name column = %q, want %q", records[1][1], "Priya Sharma")
	}
}
