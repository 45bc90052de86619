package leads

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/credibundl/cardstack/internal/auth"
	"github.com/credibundl/cardstack/internal/server"
)

// Handler serves the lead capture API.
type Handler struct {
	repo        Repository
	logger      *zap.Logger
	adminSecret string
	exportLimit int
}

// NewHandler creates a lead capture handler. exportLimit caps CSV exports;
// zero means unlimited.
func NewHandler(repo Repository, logger *zap.Logger, adminSecret string, exportLimit int) *Handler {
	return &Handler{repo: repo, logger: logger, adminSecret: adminSecret, exportLimit: exportLimit}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/leads", h.handleCreate)
	mux.HandleFunc("GET /api/v1/leads/export.csv", auth.RequireAdmin(h.adminSecret, h.handleExport))
}

// handleCreate accepts a new application enquiry.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var lead Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		server.BadRequest(w, "invalid JSON body", r.URL.Path)
		return
	}

	if err := lead.Validate(); err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	if err := h.repo.Create(r.Context(), &lead); err != nil {
		h.logger.Error("failed to store lead", zap.Error(err))
		server.InternalError(w, "failed to store lead", r.URL.Path)
		return
	}

	h.logger.Info("lead captured",
		zap.String("id", lead.ID),
		zap.String("source", lead.Source))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(lead)
}

// handleExport streams all captured leads as CSV. Admin only.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.List(r.Context(), h.exportLimit)
	if err != nil {
		h.logger.Error("failed to list leads", zap.Error(err))
		server.InternalError(w, "failed to export leads", r.URL.Path)
		return
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeaders())
	for _, l := range all {
		_ = cw.Write(leadToCSVRow(l))
	}
	cw.Flush()
}
