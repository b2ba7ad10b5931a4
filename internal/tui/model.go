package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ttb/internal/billing"
	"ttb/internal/catalog"
	"ttb/internal/config"
	"ttb/internal/domain"
	"ttb/internal/errors"
	"ttb/internal/tracker"
	"ttb/internal/validation"
)

// Messages delivered from the tracker's event bridge.
type (
	MsgTick          string
	MsgAutoStopped   string
	MsgRecorded      domain.SessionRecord
	MsgPersistFailed string
)

// inputMode selects which inline input form is open, if any.
type inputMode int

const (
	inputNone inputMode = iota
	inputAddProject
	inputAddRate
)

// Model is the terminal front end. All timing, catalog and billing rules live
// in the packages it drives; the model only renders their outputs and relays
// key presses.
type Model struct {
	tracker    *tracker.Tracker
	catalog    *catalog.Manager
	aggregator *billing.Aggregator
	cfg        *config.Config

	events chan tea.Msg

	ProjectIndex  int
	RateIndex     int
	CurrencyIndex int

	Elapsed    string
	TotalsTime string
	TotalsBill string
	Notice     string

	Mode       inputMode
	InputValue string

	width  int
	height int
}

// Bridge forwards tracker events into the bubbletea message loop.
type Bridge struct {
	events chan tea.Msg
}

func (b Bridge) TimerTick(elapsed string) { b.events <- MsgTick(elapsed) }

func (b Bridge) SessionRecorded(record domain.SessionRecord) { b.events <- MsgRecorded(record) }

func (b Bridge) AutoStopped(reason string) { b.events <- MsgAutoStopped(reason) }

func (b Bridge) PersistenceFailed(reason string) { b.events <- MsgPersistFailed(reason) }

// NewBridge creates the event bridge the tracker should be constructed with.
// The same bridge must be handed to NewModel.
func NewBridge() Bridge {
	return Bridge{events: make(chan tea.Msg, 16)}
}

// NewModel creates the front-end model.
func NewModel(trk *tracker.Tracker, cat *catalog.Manager, agg *billing.Aggregator, bridge Bridge, cfg *config.Config) *Model {
	m := &Model{
		tracker:    trk,
		catalog:    cat,
		aggregator: agg,
		cfg:        cfg,
		events:     bridge.events,
		Elapsed:    "00:00:00",
	}
	for i, currency := range domain.Currencies() {
		if currency == cfg.Display.DefaultCurrency {
			m.CurrencyIndex = i
		}
	}
	m.refreshTotals()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTick:
		m.Elapsed = string(msg)
		return m, m.waitForEvent()

	case MsgRecorded:
		m.Elapsed = "00:00:00"
		m.refreshTotals()
		return m, m.waitForEvent()

	case MsgAutoStopped:
		m.Notice = string(msg)
		return m, m.waitForEvent()

	case MsgPersistFailed:
		m.Notice = string(msg)
		return m, m.waitForEvent()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Mode != inputNone {
		return m.handleFormInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.stopTracking()
		return m, tea.Quit

	case " ", "enter":
		m.toggleTracking()

	case "left", "h":
		m.cycleProject(-1)

	case "right", "l":
		m.cycleProject(1)

	case "up", "k":
		m.cycleRate(1)

	case "down", "j":
		m.cycleRate(-1)

	case "c":
		m.CurrencyIndex = (m.CurrencyIndex + 1) % len(domain.Currencies())
		m.refreshTotals()

	case "n":
		m.Mode = inputAddProject
		m.InputValue = ""

	case "t":
		m.Mode = inputAddRate
		m.InputValue = ""
	}

	return m, nil
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = inputNone
		m.InputValue = ""

	case "enter":
		m.commitForm()

	case "backspace":
		if len(m.InputValue) > 0 {
			m.InputValue = m.InputValue[:len(m.InputValue)-1]
		}

	default:
		if msg.Type == tea.KeyRunes {
			m.InputValue += string(msg.Runes)
		}
	}

	return m, nil
}

func (m *Model) commitForm() {
	switch m.Mode {
	case inputAddProject:
		projects, err := m.catalog.AddProject(m.InputValue)
		if err != nil {
			m.Notice = userMessage(err)
			return
		}
		m.ProjectIndex = indexOf(projects, strings.TrimSpace(m.InputValue))
		m.Notice = ""

	case inputAddRate:
		rate, err := strconv.ParseFloat(m.InputValue, 64)
		if err != nil {
			m.Notice = "rate must be a number"
			return
		}
		rates, err := m.catalog.AddRate(rate)
		if err != nil {
			m.Notice = userMessage(err)
			return
		}
		for i, r := range rates {
			if r == rate {
				m.RateIndex = i
			}
		}
		m.Notice = ""
	}

	m.Mode = inputNone
	m.InputValue = ""
	m.refreshTotals()
}

func (m *Model) toggleTracking() {
	if m.tracker.IsTracking() {
		m.stopTracking()
		return
	}

	project, ok := m.selectedProject()
	if !ok {
		m.Notice = "select or add a project first"
		return
	}
	rate, ok := m.selectedRate()
	if !ok {
		m.Notice = "select or add a rate first"
		return
	}

	if err := m.tracker.Start(project, rate, m.selectedCurrency()); err != nil {
		m.Notice = userMessage(err)
		return
	}
	m.Notice = ""
	m.Elapsed = "00:00:00"
}

func (m *Model) stopTracking() {
	if !m.tracker.IsTracking() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Database.WriteTimeout)
	defer cancel()

	if err := m.tracker.Stop(ctx); err != nil {
		m.Notice = userMessage(err)
	}
}

// refreshTotals recomputes the accumulated time and billable amount for the
// current selection.
func (m *Model) refreshTotals() {
	project, ok := m.selectedProject()
	if !ok {
		m.TotalsTime = billing.FormatDuration(0)
		m.TotalsBill = billing.FormatAmount(0, m.selectedCurrency())
		return
	}
	rate, ok := m.selectedRate()
	if !ok {
		m.TotalsTime = billing.FormatDuration(0)
		m.TotalsBill = billing.FormatAmount(0, m.selectedCurrency())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Database.QueryTimeout)
	defer cancel()

	totals, err := m.aggregator.ComputeTotals(ctx, project, rate)
	if err != nil {
		m.Notice = userMessage(err)
		return
	}

	m.TotalsTime = billing.FormatDuration(totals.Duration())
	m.TotalsBill = billing.FormatAmount(totals.TotalAmount, m.selectedCurrency())
}

func (m *Model) cycleProject(step int) {
	projects := m.catalog.Projects()
	if len(projects) == 0 {
		return
	}
	m.ProjectIndex = (m.ProjectIndex + step + len(projects)) % len(projects)
	m.refreshTotals()
}

func (m *Model) cycleRate(step int) {
	rates := m.catalog.Rates()
	if len(rates) == 0 {
		return
	}
	m.RateIndex = (m.RateIndex + step + len(rates)) % len(rates)
	m.refreshTotals()
}

func (m *Model) selectedProject() (string, bool) {
	projects := m.catalog.Projects()
	if m.ProjectIndex < 0 || m.ProjectIndex >= len(projects) {
		return "", false
	}
	return projects[m.ProjectIndex], true
}

func (m *Model) selectedRate() (float64, bool) {
	rates := m.catalog.Rates()
	if m.RateIndex < 0 || m.RateIndex >= len(rates) {
		return 0, false
	}
	return rates[m.RateIndex], true
}

func (m *Model) selectedCurrency() domain.Currency {
	currencies := domain.Currencies()
	return currencies[m.CurrencyIndex%len(currencies)]
}

func userMessage(err error) string {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

func indexOf(values []string, target string) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return 0
}
