package cards

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/credibundl/cardstack/internal/tools"
	"github.com/credibundl/cardstack/pkg/models"
)

// ListResponse is the response for GET /api/v1/cards.
type ListResponse struct {
	Count int           `json:"count"`
	Cards []models.Card `json:"cards"`
}

// CardDetail is a catalog entry with its apply link resolved.
type CardDetail struct {
	models.Card
	ApplyLink string `json:"apply_link"`
}

// CompareRequest selects cards and a spend level for side-by-side savings.
type CompareRequest struct {
	CardIDs      []string `json:"card_ids"`
	MonthlySpend float64  `json:"monthly_spend"`
}

// CompareEntry is one card's row in a comparison.
type CompareEntry struct {
	Card    models.Card   `json:"card"`
	Savings tools.Savings `json:"savings"`
}

// CompareResponse is the response for POST /api/v1/compare.
type CompareResponse struct {
	MonthlySpend float64        `json:"monthly_spend"`
	Entries      []CompareEntry `json:"entries"`
}

// CategoryResponse is the response for GET /api/v1/categories/{slug}.
type CategoryResponse struct {
	Slug  string        `json:"slug"`
	Name  string        `json:"name"`
	Count int           `json:"count"`
	Cards []models.Card `json:"cards"`
}

// maxCompareCards caps a single comparison request.
const maxCompareCards = 4

// Handler serves the card listing, detail, comparison, and export API.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new cards API handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/cards", h.handleList)
	mux.HandleFunc("GET /api/v1/cards/export.csv", h.handleExport)
	mux.HandleFunc("GET /api/v1/cards/{slug}", h.handleDetail)
	mux.HandleFunc("POST /api/v1/compare", h.handleCompare)
	mux.HandleFunc("GET /api/v1/categories/{slug}", h.handleCategory)
}

// handleList returns cards matching the query parameters.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filters{
		Search:       q.Get("q"),
		UPIRewards:   q.Get("upi") == "true",
		LoungeAccess: q.Get("lounge") == "true",
		NoAnnualFee:  q.Get("no_fee") == "true",
		CategorySlug: q.Get("category"),
	}

	key := SortKey(q.Get("sort"))
	switch key {
	case "", SortByRating, SortByRewardRate, SortByAnnualFee, SortByName:
	default:
		writeError(w, http.StatusBadRequest,
			"sort must be one of rating, rewardRate, annualFee, name")
		return
	}

	dir := SortDirection(q.Get("order"))
	switch dir {
	case "", SortAsc, SortDesc:
	default:
		writeError(w, http.StatusBadRequest, "order must be asc or desc")
		return
	}

	matched := h.engine.List(f, key, dir)
	writeJSON(w, http.StatusOK, ListResponse{Count: len(matched), Cards: matched})
}

// handleDetail returns a single card by slug, with its apply link.
func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	card, ok := h.engine.Catalog().BySlug(slug)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("card %q not found", slug))
		return
	}

	writeJSON(w, http.StatusOK, CardDetail{
		Card:      card,
		ApplyLink: h.engine.Catalog().ApplyLink(card.ID),
	})
}

// handleCompare computes savings for a set of cards at a given monthly spend.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.CardIDs) == 0 {
		writeError(w, http.StatusBadRequest, "card_ids must not be empty")
		return
	}
	if len(req.CardIDs) > maxCompareCards {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d cards can be compared", maxCompareCards))
		return
	}
	if req.MonthlySpend < 0 {
		writeError(w, http.StatusBadRequest, "monthly_spend must not be negative")
		return
	}

	entries := make([]CompareEntry, 0, len(req.CardIDs))
	for _, id := range req.CardIDs {
		card, ok := h.engine.Catalog().ByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("card %q not found", id))
			return
		}
		entries = append(entries, CompareEntry{
			Card:    card,
			Savings: tools.ComputeSavings(card, req.MonthlySpend),
		})
	}

	writeJSON(w, http.StatusOK, CompareResponse{
		MonthlySpend: req.MonthlySpend,
		Entries:      entries,
	})
}

// handleCategory returns the cards on a category page, best-rated first.
func (h *Handler) handleCategory(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	name := h.engine.CategoryName(slug)
	if name == "" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("category %q not found", slug))
		return
	}

	matched := h.engine.List(Filters{CategorySlug: slug}, SortByRating, SortDesc)
	writeJSON(w, http.StatusOK, CategoryResponse{
		Slug:  slug,
		Name:  name,
		Count: len(matched),
		Cards: matched,
	})
}

// handleExport streams the full catalog as a CSV guide.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="credit-cards-guide.csv"`)
	w.Header().Set("Cache-Control", "no-cache")

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeaders())
	for _, card := range cat.Cards() {
		_ = cw.Write(cardToCSVRow(card, cat.ApplyLink(card.ID)))
	}
	cw.Flush()
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://credibundl.com/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
