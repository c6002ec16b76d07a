// Package catalog holds the static fraud news feed and the games catalogue.
package catalog

import (
	"strings"

	"github.com/MKhiriev/fraud-shield/models"
)

// CategoryAll matches every news category.
const CategoryAll = "all"

// StoryGameID is the id under which the story game reports completions.
const StoryGameID = "story-phishing"

// Catalog is an immutable set of news articles, categories and games.
type Catalog struct {
	articles   []models.NewsArticle
	categories []models.NewsCategory
	games      []models.GameInfo
}

// New returns the bundled catalogue.
func New() *Catalog {
	return NewWith(defaultArticles(), defaultCategories(), defaultGames())
}

// NewWith builds a catalogue from the given content.
func NewWith(articles []models.NewsArticle, categories []models.NewsCategory, games []models.GameInfo) *Catalog {
	return &Catalog{
		articles:   articles,
		categories: categories,
		games:      games,
	}
}

// News returns the articles matching filter in catalogue order.
func (c *Catalog) News(filter models.NewsFilter) []models.NewsArticle {
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]models.NewsArticle, 0, len(c.articles))
	for _, a := range c.articles {
		if category != "" && category != CategoryAll && a.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) {
			continue
		}
		result = append(result, a)
	}

	return result
}

func (c *Catalog) Categories() []models.NewsCategory {
	return append([]models.NewsCategory(nil), c.categories...)
}

func (c *Catalog) Games() []models.GameInfo {
	return append([]models.GameInfo(nil), c.games...)
}
