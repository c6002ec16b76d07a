package tui

import (
	"testing"

	"github.com/MKhiriev/fraud-shield/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// collect runs cmd and flattens batches into the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}

// findMsg returns the first message of type T produced by cmd.
func findMsg[T any](cmd tea.Cmd) (T, bool) {
	for _, msg := range collect(cmd) {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

type clientMocks struct {
	auth   *mock.MockClientAuthService
	player *mock.MockClientPlayerService
}

func newClientMocks(t *testing.T) clientMocks {
	ctrl := gomock.NewController(t)
	return clientMocks{
		auth:   mock.NewMockClientAuthService(ctrl),
		player: mock.NewMockClientPlayerService(ctrl),
	}
}
