package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardModel_InitLoadsEverything(t *testing.T) {
	m := newClientMocks(t)
	dash := NewDashboardModel(context.Background(), m.auth, m.player)

	m.player.EXPECT().Profile(gomock.Any()).Return(models.Profile{Username: "alice", ShieldCoins: 42, CurrentLevel: 1}, nil)
	m.player.EXPECT().Leaderboard(gomock.Any()).Return([]models.LeaderboardEntry{{Username: "bob", ShieldCoins: 99}, {Username: "alice", ShieldCoins: 42}}, nil)
	m.player.EXPECT().History(gomock.Any(), historyLimit).Return([]models.PlayRecord{{TotalScore: 140, Grade: "B"}}, nil)

	for _, msg := range collect(dash.Init()) {
		dash.Update(msg)
	}

	assert.False(t, dash.loading())
	view := dash.View()
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "bob")
	assert.Contains(t, view, "140/200")
}

func TestDashboardModel_DropsStaleLeaderboard(t *testing.T) {
	m := newClientMocks(t)
	dash := NewDashboardModel(context.Background(), m.auth, m.player)
	dash.generation = 2
	dash.loadingBoard = true

	dash.Update(leaderboardLoadedMsg{generation: 1, entries: []models.LeaderboardEntry{{Username: "stale"}}})
	assert.True(t, dash.loadingBoard)
	assert.Empty(t, dash.leaderboard)

	dash.Update(leaderboardLoadedMsg{generation: 2, entries: []models.LeaderboardEntry{{Username: "fresh"}}})
	assert.False(t, dash.loadingBoard)
	require.Len(t, dash.leaderboard, 1)
	assert.Equal(t, "fresh", dash.leaderboard[0].Username)
}

func TestDashboardModel_UnauthorizedExpiresSession(t *testing.T) {
	m := newClientMocks(t)
	dash := NewDashboardModel(context.Background(), m.auth, m.player)

	_, cmd := dash.Update(profileLoadedMsg{err: service.ErrTokenIsExpiredOrInvalid})

	_, ok := findMsg[sessionExpiredMsg](cmd)
	assert.True(t, ok)
}

func TestDashboardModel_OtherErrorsAreShown(t *testing.T) {
	m := newClientMocks(t)
	dash := NewDashboardModel(context.Background(), m.auth, m.player)

	_, cmd := dash.Update(profileLoadedMsg{err: service.ErrServerUnavailable})

	assert.Nil(t, cmd)
	assert.Contains(t, dash.View(), msgServerUnavailable)
}

func TestDashboardModel_Actions(t *testing.T) {
	m := newClientMocks(t)
	dash := NewDashboardModel(context.Background(), m.auth, m.player)

	_, cmd := dash.Update(keyRunes("p"))
	nav, _ := findMsg[NavigateTo](cmd)
	assert.Equal(t, pageStory, nav.Page)

	_, cmd = dash.Update(keyRunes("n"))
	nav, _ = findMsg[NavigateTo](cmd)
	assert.Equal(t, pageNews, nav.Page)
}

func TestDashboardModel_Logout(t *testing.T) {
	m := newClientMocks(t)
	dash := NewDashboardModel(context.Background(), m.auth, m.player)
	dash.profile = &models.Profile{Username: "alice"}

	m.auth.EXPECT().Logout(gomock.Any()).Return(errors.New("disk full"))

	_, cmd := dash.Update(keyRunes("l"))
	require.True(t, dash.loggingOut)

	// input is ignored while logging out
	_, ignored := dash.Update(keyRunes("p"))
	assert.Nil(t, ignored)

	done, ok := findMsg[logoutDoneMsg](cmd)
	require.True(t, ok)

	_, cmd = dash.Update(done)
	nav, ok := findMsg[NavigateTo](cmd)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.IsType(t, LogoutNotice{}, nav.Payload)
	assert.Nil(t, dash.profile)
}
