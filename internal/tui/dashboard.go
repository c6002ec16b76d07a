package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	historyLimit     = 5
	leaderboardLimit = 10
)

// DashboardModel shows the profile card, the leaderboard and the recent local
// play history. Leaderboard responses carry the generation of the request
// that produced them; only the latest one is applied.
type DashboardModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	player service.ClientPlayerService

	profile     *models.Profile
	leaderboard []models.LeaderboardEntry
	history     []models.PlayRecord

	generation     uint64
	loadingProfile bool
	loadingBoard   bool
	loggingOut     bool
	spinner        spinner.Model

	errMsg string
}

func NewDashboardModel(ctx context.Context, auth service.ClientAuthService, player service.ClientPlayerService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:     ctx,
		auth:    auth,
		player:  player,
		spinner: s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.reload()
}

func (m *DashboardModel) reload() tea.Cmd {
	m.generation++
	m.loadingProfile = true
	m.loadingBoard = true
	m.errMsg = ""

	return tea.Batch(
		m.spinner.Tick,
		m.cmdLoadProfile(),
		m.cmdLoadLeaderboard(m.generation),
		m.cmdLoadHistory(),
	)
}

func (m *DashboardModel) loading() bool {
	return m.loadingProfile || m.loadingBoard
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardEnterMsg:
		return m, m.reload()
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case profileLoadedMsg:
		m.loadingProfile = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		profile := msg.profile
		m.profile = &profile
		return m, nil
	case leaderboardLoadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loadingBoard = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.leaderboard = msg.entries
		return m, nil
	case historyLoadedMsg:
		if msg.err == nil {
			m.history = msg.records
		}
		return m, nil
	case logoutDoneMsg:
		m.loggingOut = false
		m.profile = nil
		m.leaderboard = nil
		m.history = nil
		notice := "Logged out"
		if msg.err != nil {
			notice = "Logged out, but the saved session could not be removed"
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: LogoutNotice{Message: notice}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loggingOut {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.play):
		return m, func() tea.Msg { return NavigateTo{Page: pageStory} }
	case key.Matches(keyMsg, keys.news):
		return m, func() tea.Msg { return NavigateTo{Page: pageNews} }
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.logout):
		m.loggingOut = true
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *DashboardModel) handleError(err error) tea.Cmd {
	if isSessionError(err) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	m.errMsg = humanizeError(err)
	return nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewProfile())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Leaderboard"))
	b.WriteString("\n")
	b.WriteString(m.viewLeaderboard())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Recent games"))
	b.WriteString("\n")
	b.WriteString(m.viewHistory())

	if m.loggingOut {
		b.WriteString("\n\nLogging out...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	title := "DASHBOARD"
	if m.loading() {
		title += " " + m.spinner.View()
	}

	return renderPage(title, b.String(), "p: play story │ n: news │ r: refresh │ l: log out │ q: quit")
}

func (m *DashboardModel) viewProfile() string {
	if m.profile == nil {
		if m.loadingProfile {
			return "Loading profile..."
		}
		return "Profile unavailable"
	}

	p := m.profile
	card := fmt.Sprintf("%s <%s>\nLevel %d │ %d shield coins │ streak %d day(s)\nLast login: %s",
		p.Username, p.Email, p.CurrentLevel, p.ShieldCoins, p.CurrentStreak, formatTime(p.LastLogin))
	return cardStyle.Render(card)
}

func (m *DashboardModel) viewLeaderboard() string {
	if len(m.leaderboard) == 0 {
		if m.loadingBoard {
			return "Loading..."
		}
		return "No players yet"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-3s │ %-20s │ %6s │ %s\n", "#", "Player", "Coins", "Level"))
	b.WriteString("────┼──────────────────────┼────────┼──────\n")
	for i, e := range m.leaderboard {
		if i >= leaderboardLimit {
			break
		}
		line := fmt.Sprintf("%-3d │ %-20s │ %6d │ %d", i+1, fitText(e.Username, 20), e.ShieldCoins, e.CurrentLevel)
		if m.profile != nil && e.Username == m.profile.Username {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) viewHistory() string {
	if len(m.history) == 0 {
		return "No games played on this device"
	}

	var b strings.Builder
	for _, r := range m.history {
		claimed := ""
		if r.RewardClaimed {
			claimed = " (reward claimed)"
		}
		b.WriteString(fmt.Sprintf("%s  %3d/%d  %s%s\n",
			r.PlayedAt.Local().Format("2006-01-02 15:04"), r.TotalScore, story.MaxScore, r.Grade, claimed))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) cmdLoadProfile() tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		profile, err := player.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *DashboardModel) cmdLoadLeaderboard(generation uint64) tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		entries, err := player.Leaderboard(ctx)
		return leaderboardLoadedMsg{generation: generation, entries: entries, err: err}
	}
}

func (m *DashboardModel) cmdLoadHistory() tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		records, err := player.History(ctx, historyLimit)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
