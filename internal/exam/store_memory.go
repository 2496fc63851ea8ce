package exam

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu          sync.RWMutex
	sets        map[string]QuestionSet
	tokens      map[string]ShareToken
	submissions map[string][]Submission // shareID -> ordered submissions
}

// NewInMemoryStore returns a Store backed by process memory, used in tests
// and offline development.
func NewInMemoryStore() Store {
	return &memoryStore{
		sets:        map[string]QuestionSet{},
		tokens:      map[string]ShareToken{},
		submissions: map[string][]Submission{},
	}
}

func (m *memoryStore) PutQuestionSet(_ context.Context, qs QuestionSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[qs.ID] = qs
	return nil
}

func (m *memoryStore) PutShareToken(_ context.Context, t ShareToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[t.ID] = t
	return nil
}

func (m *memoryStore) GetShared(_ context.Context, shareID string) (ShareToken, QuestionSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tokens[shareID]
	if !ok {
		return ShareToken{}, QuestionSet{}, ErrNotFound
	}
	qs, ok := m.sets[t.QuestionSetID]
	if !ok {
		return ShareToken{}, QuestionSet{}, ErrNotFound
	}
	return t, qs, nil
}

func (m *memoryStore) PutSubmission(_ context.Context, s Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions[s.ShareTokenID] = append(m.submissions[s.ShareTokenID], s)
	return nil
}

func (m *memoryStore) GetSubmission(_ context.Context, shareID, submissionID string) (Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.submissions[shareID] {
		if s.ID == submissionID {
			return s, nil
		}
	}
	return Submission{}, ErrNotFound
}

func (m *memoryStore) ListPercentages(_ context.Context, shareID, excludeSubmissionID string) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	subs := m.submissions[shareID]
	out := make([]float64, 0, len(subs))
	for _, s := range subs {
		if excludeSubmissionID != "" && s.ID == excludeSubmissionID {
			continue
		}
		out = append(out, s.Percentage)
	}
	return out, nil
}
