package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ResultsModel grades a finished game, saves it to the local history and
// lets the player claim the shield-coin reward once.
type ResultsModel struct {
	ctx    context.Context
	player service.ClientPlayerService

	result   story.Result
	record   models.PlayRecord
	reward   *models.GameReward
	saving   bool
	claiming bool

	status string
	errMsg string
}

func NewResultsModel(ctx context.Context, player service.ClientPlayerService) *ResultsModel {
	return &ResultsModel{ctx: ctx, player: player}
}

func (m *ResultsModel) Init() tea.Cmd {
	return nil
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gameFinishedMsg:
		m.result = msg.result
		m.record = models.PlayRecord{}
		m.reward = nil
		m.status = ""
		m.errMsg = ""
		m.saving = true
		return m, m.cmdRecord(msg.result)
	case playSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = "Could not save the game: " + humanizeError(msg.err)
			return m, nil
		}
		m.record = msg.record
		return m, nil
	case rewardClaimedMsg:
		m.claiming = false
		if msg.err != nil {
			if isSessionError(msg.err) {
				return m, func() tea.Msg { return sessionExpiredMsg{} }
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		reward := msg.reward
		m.reward = &reward
		m.record = msg.record
		m.status = fmt.Sprintf("+%d shield coins! Balance: %d", reward.CoinReward, reward.NewShieldCoins)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.claim):
		return m, m.claim()
	case key.Matches(keyMsg, keys.copy):
		if err := writeClipboard(m.summary()); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = "Summary copied"
		return m, nil
	case key.Matches(keyMsg, keys.play):
		return m, func() tea.Msg { return NavigateTo{Page: pageStory} }
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	}

	return m, nil
}

func (m *ResultsModel) claim() tea.Cmd {
	switch {
	case m.saving || m.claiming:
		return nil
	case m.record.RewardClaimed:
		m.status = "Reward already claimed"
		return nil
	case m.record.ID == 0:
		m.errMsg = "The game was not saved, the reward cannot be claimed"
		return nil
	}

	m.errMsg = ""
	m.claiming = true
	return m.cmdClaim(m.record)
}

func (m *ResultsModel) summary() string {
	r := m.result
	return fmt.Sprintf("Fraud Shield: %s (%s) %d/%d points, %.0f%%, %d XP",
		r.Grade, r.Message, r.Total, r.MaxScore, r.Percentage, r.XP)
}

func (m *ResultsModel) View() string {
	r := m.result
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Grade %s: %s", r.Grade, r.Message)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Story score: %d\n", r.StoryScore))
	b.WriteString(fmt.Sprintf("Quiz score:  %d\n", r.QuizScore))
	b.WriteString(fmt.Sprintf("Total:       %d / %d (%.0f%%)\n", r.Total, r.MaxScore, r.Percentage))
	b.WriteString(fmt.Sprintf("XP earned:   %d\n", r.XP))

	switch {
	case m.saving:
		b.WriteString("\nSaving game...")
	case m.claiming:
		b.WriteString("\nClaiming reward...")
	case m.record.RewardClaimed:
		b.WriteString("\n")
		b.WriteString(okStyle.Render("Reward claimed"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("RESULTS", strings.TrimRight(b.String(), "\n"), "r: claim reward │ c: copy │ p: play again │ enter: dashboard")
}

func (m *ResultsModel) cmdRecord(result story.Result) tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		record, err := player.RecordGame(ctx, result)
		return playSavedMsg{record: record, err: err}
	}
}

func (m *ResultsModel) cmdClaim(record models.PlayRecord) tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		reward, updated, err := player.ClaimReward(ctx, record)
		return rewardClaimedMsg{reward: reward, record: updated, err: err}
	}
}
