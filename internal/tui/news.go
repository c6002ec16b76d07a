package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/catalog"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NewsModel lists fraud news. left/right cycle the category, "/" edits the
// search query; every change refetches and only the newest response is kept.
type NewsModel struct {
	ctx    context.Context
	player service.ClientPlayerService

	categories []models.NewsCategory
	category   int
	query      string
	search     textinput.Model
	searching  bool

	articles   []models.NewsArticle
	idx        int
	generation uint64
	loading    bool
	errMsg     string
}

func NewNewsModel(ctx context.Context, player service.ClientPlayerService) *NewsModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = 30

	return &NewsModel{
		ctx:        ctx,
		player:     player,
		categories: []models.NewsCategory{{ID: catalog.CategoryAll, Name: "All"}},
		search:     search,
	}
}

func (m *NewsModel) Init() tea.Cmd {
	m.idx = 0
	return m.reload()
}

func (m *NewsModel) currentCategory() string {
	if m.category < 0 || m.category >= len(m.categories) {
		return catalog.CategoryAll
	}
	return m.categories[m.category].ID
}

func (m *NewsModel) reload() tea.Cmd {
	m.generation++
	m.loading = true
	m.errMsg = ""

	ctx, player, generation := m.ctx, m.player, m.generation
	filter := models.NewsFilter{Category: m.currentCategory(), Query: m.query}
	return func() tea.Msg {
		resp, err := player.News(ctx, filter)
		return newsLoadedMsg{generation: generation, resp: resp, err: err}
	}
}

func (m *NewsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(newsLoadedMsg); ok {
		if loaded.generation != m.generation {
			return m, nil
		}
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeError(loaded.err)
			return m, nil
		}
		m.applyCategories(loaded.resp.Categories)
		m.articles = loaded.resp.Articles
		if m.idx >= len(m.articles) {
			m.idx = max(len(m.articles)-1, 0)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.searching = false
			m.search.Blur()
			m.query = strings.TrimSpace(m.search.Value())
			m.idx = 0
			return m, m.reload()
		case key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.search.Blur()
			m.search.SetValue(m.query)
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.tab):
		m.category = (m.category + 1) % len(m.categories)
		m.idx = 0
		return m, m.reload()
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.backtab):
		m.category = (m.category - 1 + len(m.categories)) % len(m.categories)
		m.idx = 0
		return m, m.reload()
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.articles)-1 {
			m.idx++
		}
	}

	return m, nil
}

// applyCategories replaces the category list, keeping the selected id.
func (m *NewsModel) applyCategories(categories []models.NewsCategory) {
	if len(categories) == 0 {
		return
	}
	selected := m.currentCategory()
	m.categories = categories
	m.category = 0
	for i, c := range categories {
		if c.ID == selected {
			m.category = i
			break
		}
	}
}

func (m *NewsModel) View() string {
	var b strings.Builder

	for i, c := range m.categories {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == m.category {
			b.WriteString(selectedStyle.Render("[" + c.Name + "]"))
		} else {
			b.WriteString(" " + c.Name + " ")
		}
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: ")
		b.WriteString(m.search.View())
	} else {
		b.WriteString("Search: ")
		b.WriteString(valueOrDash(m.query))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.articles) == 0:
		b.WriteString("Loading...")
	case len(m.articles) == 0:
		b.WriteString("No articles match")
	default:
		for i, a := range m.articles {
			line := fmt.Sprintf("%s%s %-6s %s", cursor(i == m.idx), a.Icon, a.Severity, fitText(a.Title, 60))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		a := m.articles[m.idx]
		b.WriteString("\n")
		b.WriteString(cardStyle.Render(fmt.Sprintf("%s\n\n%s\n\n%s │ %s │ %s", a.Title, a.Description, a.Source, a.Date, a.ReadTime)))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("FRAUD NEWS", strings.TrimRight(b.String(), "\n"), "←/→: category │ /: search │ ↑/↓: move │ esc: back")
}
