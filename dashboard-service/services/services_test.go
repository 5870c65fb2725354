package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Bipul-Dubey/placement-dashboard/shared/db"
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/google/uuid"
)

// memorySnapshots is an in-memory db.SnapshotStore.
type memorySnapshots struct {
	mu      sync.Mutex
	saved   []sharedmodels.DatasetSnapshot
	saveErr error
}

func (m *memorySnapshots) Save(_ context.Context, s *sharedmodels.DatasetSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	s.ID = uuid.New()
	m.saved = append(m.saved, *s)
	return nil
}

func (m *memorySnapshots) Latest(_ context.Context) (*sharedmodels.DatasetSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saved) == 0 {
		return nil, db.ErrNoSnapshot
	}
	s := m.saved[len(m.saved)-1]
	return &s, nil
}

type brokenSnapshots struct{}

func (brokenSnapshots) Save(context.Context, *sharedmodels.DatasetSnapshot) error {
	return errors.New("disk full")
}

func (brokenSnapshots) Latest(context.Context) (*sharedmodels.DatasetSnapshot, error) {
	return nil, errors.New("database is locked")
}

type recordingMirror struct {
	keys []string
	err  error
}

func (m *recordingMirror) Upload(_ context.Context, key string, body []byte) error {
	if m.err != nil {
		return m.err
	}
	m.keys = append(m.keys, key)
	return nil
}
