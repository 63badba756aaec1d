package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/swdex/internal/emoji"
	"github.com/yildizm/swdex/internal/people"
	"github.com/yildizm/swdex/internal/session"
)

// View renders the current screen
func (m *App) View() string {
	if m.quitting {
		return ""
	}

	switch m.Screen() {
	case ScreenLoading:
		return m.renderLoadingScreen()
	case ScreenFailed:
		return m.renderFailedScreen()
	case ScreenDetail:
		return m.renderDetailScreen()
	default:
		return m.list.View()
	}
}

func (m *App) renderLoadingScreen() string {
	content := fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Muted.Render("Loading people..."))
	return lipgloss.JoinVertical(lipgloss.Left, "", content, "", m.help.View(m.keys))
}

func (m *App) renderFailedScreen() string {
	title := m.styles.Title.Render(m.list.Title)
	message := m.styles.Error.Render(emoji.Prefix("error") + session.ErrorText(m.status))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		message,
		"",
		m.help.View(m.keys),
	)
}

func (m *App) renderDetailScreen() string {
	rec, found := m.Detail()

	header := m.styles.Title.Render(emoji.Prefix("person") + "Character")
	if !found {
		// an unknown name renders the chrome only
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.help.View(m.keys))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(rec.Name),
		"",
		m.renderFields(rec),
	)

	box := m.styles.Box.Width(min(m.width-4, 60))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		box.Render(body),
		"",
		m.help.View(m.keys),
	)
}

func (m *App) renderFields(rec people.Record) string {
	icons := map[string]string{
		people.LabelHeight:    "height",
		people.LabelMass:      "mass",
		people.LabelBirthYear: "birth",
	}

	lines := make([]string, 0, 3)
	for _, f := range rec.Fields() {
		line := emoji.Prefix(icons[f.Label]) +
			m.styles.Label.Render(f.Label+":") + " " +
			m.styles.Value.Render(f.Display())
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
