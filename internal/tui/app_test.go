package tui

import (
	"testing"

	"github.com/MKhiriev/fraud-shield/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPage struct {
	name     string
	inited   int
	received []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inited++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func newTestRoot() (RootModel, *MenuModel, *stubPage) {
	menu := NewMenuModel()
	dashboard := &stubPage{name: "dashboard"}
	root := NewRootModel(map[string]tea.Model{
		pageMenu:      menu,
		pageDashboard: dashboard,
	}, pageMenu, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"))
	return root, menu, dashboard
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot()

	model, cmd := root.Update(keyCtrlC)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.(RootModel).quitByUser)
}

func TestRootModel_NavigateInitsPage(t *testing.T) {
	root, _, dashboard := newTestRoot()

	model, _ := root.Update(NavigateTo{Page: pageDashboard})

	assert.Equal(t, 1, dashboard.inited)
	assert.Equal(t, "dashboard", model.View())
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	root, _, dashboard := newTestRoot()

	model, cmd := root.Update(NavigateTo{Page: pageDashboard, Payload: dashboardEnterMsg{}})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, dashboard.inited)

	model.Update(cmd())
	require.Len(t, dashboard.received, 1)
	assert.IsType(t, dashboardEnterMsg{}, dashboard.received[0])
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root, _, _ := newTestRoot()

	model, cmd := root.Update(NavigateTo{Page: "nowhere"})

	assert.Nil(t, cmd)
	assert.True(t, model.(RootModel).isMenuPage())
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	root, _, _ := newTestRoot()

	model, _ := root.Update(serverVersionMsg{version: "Build version: 2.0.0"})
	model, _ = model.Update(keyRunes("v"))
	view := model.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "2.0.0")

	model, _ = model.Update(keyEsc)
	assert.False(t, model.(RootModel).showBuildInfo)

	model, _ = model.Update(NavigateTo{Page: pageDashboard})
	model, _ = model.Update(keyRunes("v"))
	assert.False(t, model.(RootModel).showBuildInfo)
}

func TestRootModel_SessionExpired(t *testing.T) {
	root, menu, _ := newTestRoot()
	model, _ := root.Update(NavigateTo{Page: pageDashboard})

	model, cmd := model.Update(sessionExpiredMsg{})
	require.True(t, model.(RootModel).showError)
	assert.Contains(t, model.View(), "session has expired")
	assert.True(t, model.(RootModel).isMenuPage())

	model, _ = model.Update(cmd())
	assert.Equal(t, "Session expired", menu.status)

	// keys other than enter/esc are swallowed by the overlay
	model, _ = model.Update(keyRunes("x"))
	assert.True(t, model.(RootModel).showError)

	model, _ = model.Update(keyEnter)
	assert.False(t, model.(RootModel).showError)
}

func TestRootModel_WithServerVersion(t *testing.T) {
	root, _, _ := newTestRoot()
	root = root.WithServerVersion(func() (string, error) { return "v9", nil })

	msg, ok := findMsg[serverVersionMsg](root.Init())
	require.True(t, ok)
	assert.Equal(t, "v9", msg.version)
}

func TestMenuModel_Navigation(t *testing.T) {
	menu := NewMenuModel()

	_, cmd := menu.Update(keyEnter)
	nav, ok := findMsg[NavigateTo](cmd)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)

	menu.Update(keyRunes("j"))
	_, cmd = menu.Update(keyEnter)
	nav, ok = findMsg[NavigateTo](cmd)
	require.True(t, ok)
	assert.Equal(t, pageRegister, nav.Page)

	menu.Update(RegisterSuccessNotice{Username: "alice"})
	assert.Contains(t, menu.View(), "alice")
}
