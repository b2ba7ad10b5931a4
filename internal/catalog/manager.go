package catalog

import (
	"context"
	"sort"

	"ttb/internal/domain"
	"ttb/internal/repository/sqlite"
	"ttb/internal/validation"
)

// Manager maintains the distinct sets of known project names and rate values
// offered for selection. Both catalogs are derived from the session log at
// load time and grow through explicit additions; they never shrink. Additions
// are speculative until a session referencing them is recorded.
type Manager struct {
	store     sqlite.Store
	mapper    *domain.SessionMapper
	validator *validation.SessionValidator

	projects []string
	rates    []float64
}

// NewManager creates a new catalog manager backed by the given store.
func NewManager(store sqlite.Store) *Manager {
	return &Manager{
		store:     store,
		mapper:    domain.NewSessionMapper(),
		validator: validation.NewSessionValidator(),
	}
}

// LoadFromStore reads all session records and replaces the in-memory catalogs
// with the distinct project names and rate values found in them. On a read
// failure the current catalogs are left untouched so the caller can keep
// going with what it has.
func (m *Manager) LoadFromStore(ctx context.Context) error {
	dbSessions, err := m.store.ListSessions(ctx)
	if err != nil {
		return err
	}

	records, err := m.mapper.FromDatabaseSlice(dbSessions)
	if err != nil {
		return err
	}

	projectSet := make(map[string]struct{})
	rateSet := make(map[float64]struct{})
	for _, record := range records {
		projectSet[record.Project] = struct{}{}
		rateSet[record.Rate] = struct{}{}
	}

	projects := make([]string, 0, len(projectSet))
	for project := range projectSet {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	rates := make([]float64, 0, len(rateSet))
	for rate := range rateSet {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)

	m.projects = projects
	m.rates = rates
	return nil
}

// Projects returns the ordered project catalog.
func (m *Manager) Projects() []string {
	projects := make([]string, len(m.projects))
	copy(projects, m.projects)
	return projects
}

// Rates returns the ordered rate catalog.
func (m *Manager) Rates() []float64 {
	rates := make([]float64, len(m.rates))
	copy(rates, m.rates)
	return rates
}

// AddProject inserts a new project name into the catalog and returns the
// updated ordered list. Empty names and exact duplicates are rejected.
func (m *Manager) AddProject(name string) ([]string, error) {
	cleanedName, err := m.validator.GetValidProjectName(name)
	if err != nil {
		return nil, err
	}

	for _, existing := range m.projects {
		if existing == cleanedName {
			validationError := validation.NewValidationError()
			validationError.AddDuplicateError("project", cleanedName)
			return nil, validationError
		}
	}

	m.projects = append(m.projects, cleanedName)
	sort.Strings(m.projects)
	return m.Projects(), nil
}

// AddRate inserts a new per-day rate value into the catalog and returns the
// updated ordered list. Non-positive values and duplicates are rejected.
func (m *Manager) AddRate(rate float64) ([]float64, error) {
	if err := m.validator.ValidateRate(rate); err != nil {
		return nil, err
	}

	for _, existing := range m.rates {
		if existing == rate {
			validationError := validation.NewValidationError()
			validationError.AddDuplicateError("rate", rate)
			return nil, validationError
		}
	}

	m.rates = append(m.rates, rate)
	sort.Float64s(m.rates)
	return m.Rates(), nil
}
