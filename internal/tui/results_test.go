package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return err
	}
	t.Cleanup(func() { writeClipboard = orig })
	return &copied
}

func finishedResults(t *testing.T, m clientMocks) (*ResultsModel, models.PlayRecord) {
	t.Helper()
	result := story.ComputeResult(40, 100)
	saved := models.PlayRecord{ID: 7, TotalScore: result.Total, Grade: result.Grade}

	m.player.EXPECT().RecordGame(gomock.Any(), result).Return(saved, nil)

	res := NewResultsModel(context.Background(), m.player)
	_, cmd := res.Update(gameFinishedMsg{result: result})
	require.True(t, res.saving)

	msg, ok := findMsg[playSavedMsg](cmd)
	require.True(t, ok)
	res.Update(msg)
	require.False(t, res.saving)
	return res, saved
}

func TestResultsModel_ShowsGrade(t *testing.T) {
	m := newClientMocks(t)
	res, _ := finishedResults(t, m)

	view := res.View()
	assert.Contains(t, view, "Grade B: Good Knowledge!")
	assert.Contains(t, view, "140 / 200 (70%)")
	assert.Contains(t, view, "XP earned:   210")
}

func TestResultsModel_ClaimOnce(t *testing.T) {
	m := newClientMocks(t)
	res, saved := finishedResults(t, m)

	claimed := saved
	claimed.RewardClaimed = true
	m.player.EXPECT().
		ClaimReward(gomock.Any(), saved).
		Return(models.GameReward{CoinReward: 70, NewShieldCoins: 170, XPEarned: 140}, claimed, nil).
		Times(1)

	_, cmd := res.Update(keyRunes("r"))
	require.True(t, res.claiming)

	msg, ok := findMsg[rewardClaimedMsg](cmd)
	require.True(t, ok)
	res.Update(msg)
	assert.Contains(t, res.View(), "+70 shield coins! Balance: 170")

	_, cmd = res.Update(keyRunes("r"))
	assert.Nil(t, cmd)
	assert.Contains(t, res.View(), "Reward already claimed")
}

func TestResultsModel_ClaimUnsavedGame(t *testing.T) {
	m := newClientMocks(t)
	result := story.ComputeResult(0, 0)
	m.player.EXPECT().RecordGame(gomock.Any(), result).Return(models.PlayRecord{}, errors.New("disk full"))

	res := NewResultsModel(context.Background(), m.player)
	_, cmd := res.Update(gameFinishedMsg{result: result})
	msg, _ := findMsg[playSavedMsg](cmd)
	res.Update(msg)

	_, cmd = res.Update(keyRunes("r"))
	assert.Nil(t, cmd)
	assert.Contains(t, res.View(), "cannot be claimed")
}

func TestResultsModel_ClaimUnauthorized(t *testing.T) {
	m := newClientMocks(t)
	res, _ := finishedResults(t, m)

	_, cmd := res.Update(rewardClaimedMsg{err: service.ErrNoToken})

	_, ok := findMsg[sessionExpiredMsg](cmd)
	assert.True(t, ok)
}

func TestResultsModel_Copy(t *testing.T) {
	m := newClientMocks(t)
	res, _ := finishedResults(t, m)
	copied := stubClipboard(t, nil)

	res.Update(keyRunes("c"))

	assert.Contains(t, *copied, "140/200")
	assert.Contains(t, *copied, "B (Good Knowledge!)")
	assert.Contains(t, res.View(), "Summary copied")
}

func TestResultsModel_CopyFailure(t *testing.T) {
	m := newClientMocks(t)
	res, _ := finishedResults(t, m)
	stubClipboard(t, errors.New("no clipboard"))

	res.Update(keyRunes("c"))

	assert.Contains(t, res.View(), "Copy failed: no clipboard")
}

func TestResultsModel_Navigation(t *testing.T) {
	m := newClientMocks(t)
	res := NewResultsModel(context.Background(), m.player)

	_, cmd := res.Update(keyRunes("p"))
	nav, _ := findMsg[NavigateTo](cmd)
	assert.Equal(t, pageStory, nav.Page)

	_, cmd = res.Update(keyEnter)
	nav, _ = findMsg[NavigateTo](cmd)
	assert.Equal(t, pageDashboard, nav.Page)
}
