package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/fraud-shield/internal/catalog"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(catalog.New(), logger.Nop())
	ctx := context.Background()

	all := svc.News(ctx, models.NewsFilter{})
	assert.NotEmpty(t, all)
	assert.Equal(t, all, svc.News(ctx, models.NewsFilter{Category: catalog.CategoryAll}))

	filtered := svc.News(ctx, models.NewsFilter{Query: "DATING"})
	require.Len(t, filtered, 1)
	assert.Equal(t, 5, filtered[0].ID)

	categories := svc.Categories(ctx)
	require.NotEmpty(t, categories)
	assert.Equal(t, catalog.CategoryAll, categories[0].ID)

	var hasStory bool
	for _, g := range svc.Games(ctx) {
		if g.ID == catalog.StoryGameID {
			hasStory = true
		}
	}
	assert.True(t, hasStory)
}
