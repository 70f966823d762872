package profile

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// MockStore implements Store in memory for unit tests.
type MockStore struct {
	mu       sync.RWMutex
	profiles map[int64]*Profile
	err      error
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		profiles: make(map[int64]*Profile),
	}
}

// FailWith makes subsequent Save and Load calls return err. Pass nil to reset.
func (m *MockStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockStore) Save(ctx context.Context, p *Profile) (*SavedProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	stored := *p
	stored.Metadata = maps.Clone(p.Metadata)
	m.profiles[p.ID] = &stored

	return &SavedProfile{
		Profile: stored,
		SavedTo: fmt.Sprintf("memory://user_%d", p.ID),
		Status:  StatusSaved,
	}, nil
}

func (m *MockStore) Load(ctx context.Context, userID int64) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

// Len reports how many profiles are stored.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.profiles)
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[int64]*Profile)
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
