package ward

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FeatureStore holds the immutable district snapshot for the current session.
// Replace swaps the whole set; individual records are never mutated in place.
type FeatureStore struct {
	mu      sync.RWMutex
	records []DistrictRecord
	byID    map[string]int
	byName  map[string]int

	hooks []func([]DistrictRecord)
}

func NewFeatureStore() *FeatureStore {
	s := &FeatureStore{}
	s.index(nil)
	return s
}

// OnReplace registers a hook run synchronously after every Replace, in
// registration order. Hooks also run for the initial load.
func (s *FeatureStore) OnReplace(fn func([]DistrictRecord)) {
	s.hooks = append(s.hooks, fn)
}

// Replace installs a new district snapshot wholesale and notifies hooks.
func (s *FeatureStore) Replace(records []DistrictRecord) {
	snapshot := make([]DistrictRecord, len(records))
	copy(snapshot, records)

	s.mu.Lock()
	s.index(snapshot)
	s.mu.Unlock()

	for _, fn := range s.hooks {
		fn(snapshot)
	}
}

func (s *FeatureStore) index(records []DistrictRecord) {
	s.records = records
	s.byID = make(map[string]int, len(records))
	s.byName = make(map[string]int, len(records))
	for i, r := range records {
		s.byID[r.ID] = i
		s.byName[strings.ToLower(r.Name)] = i
	}
}

func (s *FeatureStore) Get(id string) (DistrictRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return DistrictRecord{}, false
	}
	return s.records[i], true
}

// GetByName looks up a district by display name, case-insensitively.
func (s *FeatureStore) GetByName(name string) (DistrictRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return DistrictRecord{}, false
	}
	return s.records[i], true
}

// All returns a copy of the current snapshot.
func (s *FeatureStore) All() []DistrictRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DistrictRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *FeatureStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Report is a citizen-submitted waterlogging report. Reports live for the
// process lifetime only.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Ward        string    `json:"ward"`
	Severity    string    `json:"severity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReportStore struct {
	mu      sync.RWMutex
	reports []Report
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

func (s *ReportStore) Create(wardName, severity, description string) Report {
	r := Report{
		ID:          uuid.New(),
		Ward:        wardName,
		Severity:    severity,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	s.mu.Lock()
	s.reports = append(s.reports, r)
	s.mu.Unlock()
	return r
}

func (s *ReportStore) List() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}
