package tui

import (
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages and expired sessions
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	serverVersion string

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel

	fetchVersion func() (string, error)
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

// WithServerVersion makes the build info window also show the server's
// version, fetched once at startup.
func (r RootModel) WithServerVersion(fetch func() (string, error)) RootModel {
	r.fetchVersion = fetch
	return r
}

type serverVersionMsg struct {
	version string
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.fetchVersion != nil {
		fetch := r.fetchVersion
		cmds = append(cmds, func() tea.Msg {
			v, err := fetch()
			if err != nil {
				return nil
			}
			return serverVersionMsg{version: v}
		})
	}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.showError = false
				r.errorOverlay.message = ""
			}
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(keyMsg, keys.version) && r.isMenuPage() {
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		r.serverVersion = msg.version
		return r, nil
	case sessionExpiredMsg:
		r.showError = true
		r.errorOverlay.message = "Your session has expired. Please log in again."
		return r.navigate(NavigateTo{Page: pageMenu, Payload: LogoutNotice{Message: "Session expired"}})
	case NavigateTo:
		return r.navigate(msg)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showError {
		return appStyle.Render(r.errorOverlay.View())
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("FRAUD SHIELD", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
