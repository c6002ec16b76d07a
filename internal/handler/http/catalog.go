package http

import (
	"net/http"

	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/MKhiriev/fraud-shield/models"
)

// news serves the filtered feed. ?category= selects a category ("all" or
// empty for every one) and ?q= searches titles and descriptions.
func (h *Handler) news(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	articles := h.services.CatalogService.News(ctx, models.NewsFilter{
		Category: query.Get("category"),
		Query:    query.Get("q"),
	})
	if articles == nil {
		articles = []models.NewsArticle{}
	}

	utils.WriteJSON(w, models.NewsResponse{
		Success:    true,
		Categories: h.services.CatalogService.Categories(ctx),
		Articles:   articles,
	}, http.StatusOK)
}

func (h *Handler) games(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.GamesResponse{
		Success: true,
		Games:   h.services.CatalogService.Games(r.Context()),
	}, http.StatusOK)
}
