package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trknhr/spellfix/internal/speller"
)

const suggestionLimit = 10

type sessionModel struct {
	input     textinput.Model
	list      list.Model
	speller   *speller.Speller
	lastInput string
	width     int
	height    int
	selected  string
}

// compactDelegate renders items in a single-line compact form.
type compactDelegate struct{}

func (d compactDelegate) Height() int                               { return 1 }
func (d compactDelegate) Spacing() int                              { return 0 }
func (d compactDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(suggestionItem)
	if !ok {
		return
	}
	str := fmt.Sprintf("%s  (%.0f)", i.text, i.score)
	if index == m.Index() {
		str = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("> " + str)
	} else {
		str = "  " + str
	}
	fmt.Fprint(w, str)
}

type suggestionItem struct {
	text  string
	score float64
}

func (i suggestionItem) Title() string       { return i.text }
func (i suggestionItem) Description() string { return "" }
func (i suggestionItem) FilterValue() string { return i.text }

func NewSessionModel(s *speller.Speller, initialInput string) *sessionModel {
	input := textinput.New()
	input.Placeholder = "Type a word..."
	input.SetValue(initialInput)
	input.Focus()

	l := list.New([]list.Item{}, &compactDelegate{}, 40, 10)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)

	return &sessionModel{
		input:   input,
		list:    l,
		speller: s,
	}
}

func (m *sessionModel) Init() tea.Cmd {
	return textinput.Blink
}

type suggestionsMsg struct {
	word        string
	suggestions []speller.Suggestion
}

func fetchSuggestionsCmd(s *speller.Speller, word string) tea.Cmd {
	return func() tea.Msg {
		return suggestionsMsg{word, s.Suggest(word, suggestionLimit)}
	}
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if item, ok := m.list.SelectedItem().(suggestionItem); ok {
				m.selected = item.text
				m.input.SetValue(item.text)
				return m, tea.Quit
			}

		case tea.KeyUp, tea.KeyDown:
			m.input.Blur()

		default:
			if !m.input.Focused() {
				m.input.Focus()
			}
			m.input, _ = m.input.Update(msg)
		}

	case suggestionsMsg:
		if msg.word != m.lastInput {
			// discard outdated suggestions
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.suggestions))
		for _, s := range msg.suggestions {
			items = append(items, suggestionItem{text: s.Text, score: s.Score})
		}
		m.list.SetItems(items)
		m.list.ResetSelected()
	}

	m.list, _ = m.list.Update(msg)

	word := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if word != m.lastInput {
		m.lastInput = word
		if word != "" {
			cmds = append(cmds, fetchSuggestionsCmd(m.speller, word))
		} else {
			m.list.SetItems([]list.Item{})
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *sessionModel) View() string {
	s := "Spellfix\n\n"
	s += m.input.View() + "\n\n"
	s += m.list.View() + "\n"
	s += "(quit = Ctrl+C)"
	return s
}

func (m *sessionModel) SelectedText() string {
	return m.selected
}
