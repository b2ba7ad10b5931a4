package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	timerIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	timerRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	totalsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.Mode != inputNone {
		return m.formView()
	}
	return m.mainView()
}

func (m *Model) mainView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TIME TRACKER"))
	b.WriteString("\n\n")

	if m.tracker.IsTracking() {
		b.WriteString(timerRunningStyle.Render(m.Elapsed))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("tracking"))
	} else {
		b.WriteString(timerIdleStyle.Render(m.Elapsed))
	}
	b.WriteString("\n\n")

	b.WriteString(m.selectionLine("Project", m.projectLabel(), "←/→"))
	b.WriteString("\n")
	b.WriteString(m.selectionLine("Rate", m.rateLabel(), "↑/↓"))
	b.WriteString("\n")
	b.WriteString(m.selectionLine("Currency", m.currencyLabel(), "c"))
	b.WriteString("\n\n")

	b.WriteString(totalsStyle.Render(fmt.Sprintf("Total project time: %s", m.TotalsTime)))
	b.WriteString("\n")
	b.WriteString(totalsStyle.Render(fmt.Sprintf("Amount to bill: %s", m.TotalsBill)))
	b.WriteString("\n")

	if m.Notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space/enter start·stop │ n new project │ t new rate │ q quit"))

	return boxStyle.Render(b.String())
}

func (m *Model) formView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TIME TRACKER"))
	b.WriteString("\n\n")

	switch m.Mode {
	case inputAddProject:
		b.WriteString(labelStyle.Render("New project name:"))
	case inputAddRate:
		b.WriteString(labelStyle.Render("New rate per 8-hour day:"))
	}
	b.WriteString("\n")
	b.WriteString(selectionStyle.Render(m.InputValue + "█"))
	b.WriteString("\n")

	if m.Notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter confirm │ esc cancel"))

	return boxStyle.Render(b.String())
}

func (m *Model) selectionLine(label, value, key string) string {
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%-9s", label)),
		selectionStyle.Render(value),
		helpStyle.Render("("+key+")"),
	)
}

func (m *Model) projectLabel() string {
	project, ok := m.selectedProject()
	if !ok {
		return "—"
	}
	return project
}

func (m *Model) rateLabel() string {
	rate, ok := m.selectedRate()
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%g / day", rate)
}

func (m *Model) currencyLabel() string {
	currency := m.selectedCurrency()
	return fmt.Sprintf("%s %s", currency, currency.Symbol())
}
