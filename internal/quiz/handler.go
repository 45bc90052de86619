package quiz

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/credibundl/cardstack/pkg/catalog"
	"github.com/credibundl/cardstack/pkg/models"
)

// RecommendResponse is the response for POST /api/v1/quiz/recommend.
type RecommendResponse struct {
	Count int           `json:"count"`
	Cards []models.Card `json:"cards"`
}

// Handler serves the quiz recommendation API.
type Handler struct {
	cat    *catalog.Catalog
	logger *zap.Logger
}

// NewHandler creates a new quiz handler.
func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{cat: cat, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/quiz/recommend", h.handleRecommend)
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var answers Answers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	matched := Recommend(answers, h.cat.Cards())
	if matched == nil {
		matched = []models.Card{}
	}

	h.logger.Debug("quiz recommendation served",
		zap.String("spend", answers.Spend),
		zap.Int("count", len(matched)))

	writeJSON(w, http.StatusOK, RecommendResponse{Count: len(matched), Cards: matched})
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
