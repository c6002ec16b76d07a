// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldRemember
	loginFieldCount
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs plus a remember-me toggle and dispatches an async
// login command on submit. On success it navigates to the dashboard.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	rememberMe bool
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]; the email field receives focus.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [LoginResult]: on error shows the message, on success resets the form
//     and opens the dashboard.
//   - esc: back to the menu.
//   - tab / shift+tab: move focus between the inputs and the toggle.
//   - space on the toggle: flips remember-me.
//   - enter: validates and submits.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.resetForm()
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case m.focus == loginFieldRemember && key.Matches(keyMsg, keys.toggle):
			m.rememberMe = !m.rememberMe
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
			pass := m.inputs[loginFieldPassword].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass, m.rememberMe)
		}
	}

	if m.focus == loginFieldRemember {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Email       │ [")
	b.WriteString(m.inputs[loginFieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password    │ [")
	b.WriteString(m.inputs[loginFieldPassword].View())
	b.WriteString("]\n")

	check := "[ ]"
	if m.rememberMe {
		check = "[x]"
	}
	toggle := check + " Remember me"
	if m.focus == loginFieldRemember {
		toggle = selectedStyle.Render(toggle)
	}
	b.WriteString("            │ ")
	b.WriteString(toggle)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string, rememberMe bool) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, models.LoginRequest{
			Email:      email,
			Password:   pass,
			RememberMe: rememberMe,
		})
		return LoginResult{Err: err, User: user}
	}
}

func (m *LoginModel) setFocus(i int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (i + loginFieldCount) % loginFieldCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *LoginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.rememberMe = false
	m.errMsg = ""
	m.setFocus(loginFieldEmail)
}
