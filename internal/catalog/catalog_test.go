package catalog

import (
	"testing"

	"github.com/MKhiriev/fraud-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(articles []models.NewsArticle) []int {
	out := make([]int, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestCatalog_News(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		filter models.NewsFilter
		want   []int
	}{
		{name: "no filter", filter: models.NewsFilter{}, want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "all category", filter: models.NewsFilter{Category: "all"}, want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "social", filter: models.NewsFilter{Category: "social"}, want: []int{4, 5, 8}},
		{name: "unknown category", filter: models.NewsFilter{Category: "lottery"}, want: []int{}},
		{name: "query in title ignores case", filter: models.NewsFilter{Query: "qr CODE"}, want: []int{3}},
		{name: "query in description", filter: models.NewsFilter{Query: "two-factor"}, want: []int{6}},
		{name: "category and query", filter: models.NewsFilter{Category: "social", Query: "dating"}, want: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.News(tt.filter)))
		})
	}
}

func TestCatalog_CategoriesAndGames(t *testing.T) {
	c := New()

	cats := c.Categories()
	require.Len(t, cats, 7)
	assert.Equal(t, CategoryAll, cats[0].ID)

	games := c.Games()
	require.NotEmpty(t, games)
	assert.Equal(t, StoryGameID, games[0].ID)

	// returned slices are copies
	games[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Games()[0].Title)
}
