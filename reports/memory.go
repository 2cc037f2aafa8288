package reports

import (
	"context"
	"sync"
	"time"

	"safereport-be/models"

	"github.com/google/uuid"
)

// MemoryStore keeps reports in process memory, in insertion order. A
// single lock makes every operation atomic; readers get copies, never
// references into the store.
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]models.Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.Report)}
}

func (s *MemoryStore) Create(ctx context.Context, draft Draft) (models.Report, error) {
	report, err := validateDraft(draft)
	if err != nil {
		return models.Report{}, err
	}

	report.ID = uuid.NewString()
	report.CreatedDate = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[report.ID] = report
	s.order = append(s.order, report.ID)

	return report, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.records[id]
	if !ok {
		return models.Report{}, &NotFoundError{ID: id}
	}
	return report, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch Update) (models.Report, error) {
	if err := validateUpdate(patch); err != nil {
		return models.Report{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.records[id]
	if !ok {
		return models.Report{}, &NotFoundError{ID: id}
	}

	if patch.Status != nil {
		report.Status = models.ReportStatus(*patch.Status)
	}
	if patch.InspectorNotes != nil {
		report.InspectorNotes = *patch.InspectorNotes
	}

	s.records[id] = report
	return report, nil
}

func (s *MemoryStore) All(ctx context.Context) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Report, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}
