package service

import (
	"context"

	"github.com/MKhiriev/fraud-shield/internal/catalog"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
)

type catalogService struct {
	catalog *catalog.Catalog
	logger  *logger.Logger
}

func NewCatalogService(c *catalog.Catalog, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: c,
		logger:  logger,
	}
}

func (c *catalogService) News(ctx context.Context, filter models.NewsFilter) []models.NewsArticle {
	articles := c.catalog.News(filter)
	logger.FromContext(ctx).Debug().
		Str("category", filter.Category).
		Str("query", filter.Query).
		Int("matched", len(articles)).
		Msg("news filtered")
	return articles
}

func (c *catalogService) Categories(ctx context.Context) []models.NewsCategory {
	return c.catalog.Categories()
}

func (c *catalogService) Games(ctx context.Context) []models.GameInfo {
	return c.catalog.Games()
}
