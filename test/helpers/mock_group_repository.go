package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// MockGroupRepository is an in-memory test double for bookmark.GroupRepository
type MockGroupRepository struct {
	mu      sync.RWMutex
	groups  map[string]*bookmark.Group // name -> group
	SaveErr error
}

// NewMockGroupRepository creates a new mock group repository
func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{
		groups: make(map[string]*bookmark.Group),
	}
}

// Save stores the group under its name
func (m *MockGroupRepository) Save(ctx context.Context, group *bookmark.Group) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[group.Name()] = group
	return nil
}

// FindByName retrieves a group by name
func (m *MockGroupRepository) FindByName(ctx context.Context, name string) (*bookmark.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	group, ok := m.groups[name]
	if !ok {
		return nil, &bookmark.ErrGroupNotFound{Name: name}
	}
	return group, nil
}

// List retrieves every group ordered by name
func (m *MockGroupRepository) List(ctx context.Context) ([]*bookmark.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	groups := make([]*bookmark.Group, 0, len(m.groups))
	for _, group := range m.groups {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name() < groups[j].Name() })
	return groups, nil
}

// Delete removes a group by name
func (m *MockGroupRepository) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.groups[name]; !ok {
		return &bookmark.ErrGroupNotFound{Name: name}
	}
	delete(m.groups, name)
	return nil
}

// Count returns the number of stored groups
func (m *MockGroupRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.groups)
}

// String provides a debug representation
func (m *MockGroupRepository) String() string {
	return fmt.Sprintf("MockGroupRepository{groups: %d}", m.Count())
}
