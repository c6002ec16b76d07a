package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/fraud-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCategories = []models.NewsCategory{
	{ID: "all", Name: "All"},
	{ID: "phishing", Name: "Phishing"},
	{ID: "dating", Name: "Dating"},
}

func newsResponse(titles ...string) models.NewsResponse {
	resp := models.NewsResponse{Success: true, Categories: testCategories}
	for i, title := range titles {
		resp.Articles = append(resp.Articles, models.NewsArticle{ID: i + 1, Title: title})
	}
	return resp
}

func TestNewsModel_CategoryCycling(t *testing.T) {
	m := newClientMocks(t)
	news := NewNewsModel(context.Background(), m.player)

	gomock.InOrder(
		m.player.EXPECT().News(gomock.Any(), models.NewsFilter{Category: "all"}).Return(newsResponse("one", "two"), nil),
		m.player.EXPECT().News(gomock.Any(), models.NewsFilter{Category: "phishing"}).Return(newsResponse("one"), nil),
		m.player.EXPECT().News(gomock.Any(), models.NewsFilter{Category: "all"}).Return(newsResponse("one", "two"), nil),
	)

	msg, ok := findMsg[newsLoadedMsg](news.Init())
	require.True(t, ok)
	news.Update(msg)
	assert.Len(t, news.articles, 2)
	assert.Len(t, news.categories, 3)

	_, cmd := news.Update(keyRunes("l"))
	msg, _ = findMsg[newsLoadedMsg](cmd)
	news.Update(msg)
	assert.Equal(t, "phishing", news.currentCategory())
	assert.Len(t, news.articles, 1)

	_, cmd = news.Update(keyRunes("h"))
	msg, _ = findMsg[newsLoadedMsg](cmd)
	news.Update(msg)
	assert.Equal(t, "all", news.currentCategory())
}

func TestNewsModel_Search(t *testing.T) {
	m := newClientMocks(t)
	news := NewNewsModel(context.Background(), m.player)

	m.player.EXPECT().News(gomock.Any(), models.NewsFilter{Category: "all", Query: "bank"}).Return(newsResponse("Fake bank"), nil)

	news.Update(keyRunes("/"))
	require.True(t, news.searching)
	typeText(news, "bank")

	_, cmd := news.Update(keyEnter)
	assert.False(t, news.searching)
	assert.Equal(t, "bank", news.query)

	msg, ok := findMsg[newsLoadedMsg](cmd)
	require.True(t, ok)
	news.Update(msg)
	assert.Contains(t, news.View(), "Fake bank")
}

func TestNewsModel_SearchCancelKeepsQuery(t *testing.T) {
	m := newClientMocks(t)
	news := NewNewsModel(context.Background(), m.player)
	news.query = "sms"

	news.Update(keyRunes("/"))
	typeText(news, "xyz")
	_, cmd := news.Update(keyEsc)

	assert.Nil(t, cmd)
	assert.False(t, news.searching)
	assert.Equal(t, "sms", news.query)
}

func TestNewsModel_DropsStaleResponse(t *testing.T) {
	m := newClientMocks(t)
	news := NewNewsModel(context.Background(), m.player)
	news.generation = 3
	news.loading = true

	news.Update(newsLoadedMsg{generation: 2, resp: newsResponse("stale")})
	assert.True(t, news.loading)
	assert.Empty(t, news.articles)

	news.Update(newsLoadedMsg{generation: 3, resp: newsResponse()})
	assert.False(t, news.loading)
	assert.Contains(t, news.View(), "No articles match")
}

func TestNewsModel_EscReturnsToDashboard(t *testing.T) {
	m := newClientMocks(t)
	news := NewNewsModel(context.Background(), m.player)

	_, cmd := news.Update(keyEsc)

	nav, ok := findMsg[NavigateTo](cmd)
	require.True(t, ok)
	assert.Equal(t, pageDashboard, nav.Page)
}
