package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// StoryModel drives a [story.Session]. Every dwell interval is a tea.Tick
// carrying the session generation; leaving the screen or restarting resets
// the session, which turns ticks already in flight into no-ops.
type StoryModel struct {
	session *story.Session
	timings config.ClientGame

	idx int
	// verdict of the last choice or answer; feedback is the optional
	// explanation shown under it
	verdict  string
	feedback string
	errMsg   string
}

func NewStoryModel(session *story.Session, timings config.ClientGame) *StoryModel {
	return &StoryModel{
		session: session,
		timings: timings,
	}
}

// Init starts a fresh play-through.
func (m *StoryModel) Init() tea.Cmd {
	m.restart()
	return nil
}

func (m *StoryModel) restart() {
	m.session.Reset()
	m.idx = 0
	m.verdict = ""
	m.feedback = ""
	m.errMsg = ""
}

func (m *StoryModel) tick(d time.Duration, kind tickKind) tea.Cmd {
	generation := m.session.Generation()
	return tea.Tick(d, func(time.Time) tea.Msg {
		return storyTickMsg{generation: generation, kind: kind}
	})
}

func (m *StoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storyTickMsg:
		if msg.generation != m.session.Generation() {
			return m, nil
		}
		return m, m.handleTick(msg.kind)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *StoryModel) handleTick(kind tickKind) tea.Cmd {
	switch kind {
	case tickAdvance:
		terminal, err := m.session.Advance()
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.verdict = ""
		m.feedback = ""
		m.idx = 0
		if terminal {
			return m.tick(m.timings.EndDelay, tickEnterQuiz)
		}
	case tickEnterQuiz:
		if err := m.session.EnterQuiz(); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.idx = 0
	case tickNextQuestion:
		done, err := m.session.NextQuestion()
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.verdict = ""
		m.feedback = ""
		m.idx = 0
		if done {
			result, err := m.session.Result()
			if err != nil {
				m.errMsg = err.Error()
				return nil
			}
			return func() tea.Msg {
				return NavigateTo{Page: pageResults, Payload: gameFinishedMsg{result: result}}
			}
		}
	}
	return nil
}

func (m *StoryModel) optionCount() int {
	switch m.session.Phase() {
	case story.PhaseStory:
		return len(m.session.CurrentScene().Choices)
	case story.PhaseQuiz:
		q, _ := m.session.CurrentQuestion()
		return len(q.Options)
	}
	return 0
}

func (m *StoryModel) handleKey(keyMsg tea.KeyMsg) tea.Cmd {
	if key.Matches(keyMsg, keys.esc) {
		m.restart()
		return func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	}
	if m.session.Locked() {
		return nil
	}

	n := m.optionCount()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return nil
	case key.Matches(keyMsg, keys.down):
		if m.idx < n-1 {
			m.idx++
		}
		return nil
	case key.Matches(keyMsg, keys.enter):
		return m.choose(m.idx)
	}

	if i, ok := digitIndex(keyMsg.String()); ok && i < n {
		m.idx = i
		return m.choose(i)
	}
	return nil
}

func (m *StoryModel) choose(i int) tea.Cmd {
	m.errMsg = ""

	switch m.session.Phase() {
	case story.PhaseStory:
		outcome, err := m.session.Choose(i)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.verdict = verdictText(outcome.Correct)
		m.feedback = outcome.Feedback
		return m.tick(m.timings.StoryDwell, tickAdvance)
	case story.PhaseQuiz:
		outcome, err := m.session.Answer(i)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.verdict = verdictText(outcome.Correct)
		m.feedback = outcome.Explanation
		return m.tick(m.timings.QuizDwell, tickNextQuestion)
	}
	return nil
}

func (m *StoryModel) View() string {
	var body string
	switch m.session.Phase() {
	case story.PhaseQuiz:
		body = m.viewQuiz()
	default:
		body = m.viewStory()
	}

	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	return renderPage("PHISHING STORY", body, "↑/↓ or 1-9: choose │ enter: confirm │ esc: leave")
}

func (m *StoryModel) viewStory() string {
	var b strings.Builder
	scene := m.session.CurrentScene()

	b.WriteString(fmt.Sprintf("Progress: %d%% │ Score: %d\n\n", m.session.Progress(), m.session.StoryScore()))
	b.WriteString(titleStyle.Render(strings.TrimSpace(scene.Icon + " " + scene.Title)))
	b.WriteString("\n\n")
	b.WriteString(scene.Description)
	b.WriteString("\n")

	if m.session.Locked() {
		b.WriteString("\n")
		b.WriteString(m.renderFeedback())
		return b.String()
	}

	if scene.Terminal {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("The quiz starts shortly..."))
		return b.String()
	}

	b.WriteString("\n")
	for i, c := range scene.Choices {
		b.WriteString(m.renderOption(i, c.Text))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *StoryModel) viewQuiz() string {
	var b strings.Builder
	q, ok := m.session.CurrentQuestion()
	if !ok {
		return "-"
	}

	b.WriteString(fmt.Sprintf("Question %d of %d │ Quiz score: %d\n\n",
		m.session.QuestionIndex()+1, m.session.QuestionCount(), m.session.QuizScore()))
	b.WriteString(titleStyle.Render(q.Question))
	b.WriteString("\n\n")

	selected := m.session.SelectedAnswer()
	for i, opt := range q.Options {
		line := m.renderOption(i, opt)
		if selected >= 0 && i == q.CorrectAnswer {
			line = okStyle.Render(strings.TrimRight(line, "\n")) + "\n"
		}
		b.WriteString(line)
	}

	if m.session.Locked() {
		b.WriteString("\n")
		b.WriteString(m.renderFeedback())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *StoryModel) renderOption(i int, text string) string {
	line := fmt.Sprintf("%s%d. %s", cursor(i == m.idx), i+1, text)
	if i == m.idx {
		line = selectedStyle.Render(line)
	}
	return line + "\n"
}

const verdictWrong = "Not quite."

var verdictCorrect = fmt.Sprintf("Correct! +%d", story.PointsPerCorrect)

func verdictText(correct bool) string {
	if correct {
		return verdictCorrect
	}
	return verdictWrong
}

func (m *StoryModel) renderFeedback() string {
	verdict := okStyle.Render(m.verdict)
	if m.verdict != verdictCorrect {
		verdict = warnStyle.Render(m.verdict)
	}
	if m.feedback == "" {
		return verdict
	}
	return verdict + "\n" + m.feedback
}
