package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
	repo "oddly-ddd/internal/example/repository"
	"oddly-ddd/pkg/eventbus"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockCommandRepo keeps write entities in memory with real version semantics.
type mockCommandRepo struct {
	rows    map[string]repo.WriteEntity
	saveErr error
}

func newMockCommandRepo() *mockCommandRepo {
	return &mockCommandRepo{rows: map[string]repo.WriteEntity{}}
}

func (m *mockCommandRepo) Save(_ context.Context, model example.Model) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	for _, e := range m.rows {
		if e.OwnerID == model.OwnerID() && e.Name == model.Name() {
			return "", example.NewAlreadyExistsError(model.OwnerID(), model.Name())
		}
	}
	e := mapper.ModelToWriteEntity(model)
	e.Version = repo.InitialVersion
	m.rows[e.ID] = e
	return e.ID, nil
}

func (m *mockCommandRepo) Update(_ context.Context, model example.Model, expectedVersion int64) (int64, error) {
	cur, ok := m.rows[model.ID()]
	if !ok {
		return 0, example.NewNotFoundError(model.ID())
	}
	if cur.Version != expectedVersion {
		return 0, example.NewConflictError(model.ID(), expectedVersion)
	}
	e := mapper.ModelToWriteEntity(model)
	e.Version = cur.Version + 1
	m.rows[e.ID] = e
	return e.Version, nil
}

func (m *mockCommandRepo) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

func (m *mockCommandRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *mockCommandRepo) FindModelByID(_ context.Context, id string) (example.Model, int64, error) {
	e, ok := m.rows[id]
	if !ok {
		return example.Model{}, 0, example.NewNotFoundError(id)
	}
	return mapper.WriteEntityToModel(e), e.Version, nil
}

type mockQueryRepo struct {
	rows     []repo.ReadEntity
	findErr  error
	gotPage  int
	gotSize  int
	gotQuery repo.ListFilter
}

func (m *mockQueryRepo) FindByID(_ context.Context, id string) (repo.ReadEntity, bool, error) {
	if m.findErr != nil {
		return repo.ReadEntity{}, false, m.findErr
	}
	for _, e := range m.rows {
		if e.ID == id {
			return e, true, nil
		}
	}
	return repo.ReadEntity{}, false, nil
}

func (m *mockQueryRepo) List(_ context.Context, f repo.ListFilter, page, pageSize int) ([]repo.ReadEntity, error) {
	m.gotQuery, m.gotPage, m.gotSize = f, page, pageSize
	return m.rows, nil
}

func (m *mockQueryRepo) Count(context.Context, repo.ListFilter) (int, error) {
	return len(m.rows), nil
}

type published struct {
	topic eventbus.Topic
	event eventbus.Event
}

type mockPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, ev eventbus.Event, topic eventbus.Topic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, published{topic: topic, event: ev})
	return nil
}

var errBusDown = errors.New("bus down")

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestUseCase() (*implUseCase, *mockCommandRepo, *mockQueryRepo, *mockPublisher) {
	cmd := newMockCommandRepo()
	query := &mockQueryRepo{}
	pub := &mockPublisher{}
	uc := New(&mockLogger{}, cmd, query, pub)
	uc.now = func() time.Time { return fixedNow }
	return uc, cmd, query, pub
}
