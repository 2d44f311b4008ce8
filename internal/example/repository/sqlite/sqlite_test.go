package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"oddly-ddd/config"
	configSqlite "oddly-ddd/config/sqlite"
	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
	repo "oddly-ddd/internal/example/repository"
	exampleSqlite "oddly-ddd/internal/example/repository/sqlite"
	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/log"
	"oddly-ddd/pkg/uow"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := configSqlite.Connect(ctx, config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "example.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, exampleSqlite.Migrate(ctx, db))
	return db
}

func newModel(t *testing.T, name, owner string) example.Model {
	t.Helper()
	m, err := example.Create(example.CreateParams{Name: name, Description: "desc", OwnerID: owner}, now)
	require.NoError(t, err)
	return m
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openDB(t)
	require.NoError(t, exampleSqlite.Migrate(context.Background(), db))
}

func TestCommand_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	cmd := exampleSqlite.NewCommand(openDB(t), log.NewNop())
	m := newModel(t, "Widget", "u1")

	id, err := cmd.Save(ctx, m)
	require.NoError(t, err)
	require.Equal(t, m.ID(), id)

	got, version, err := cmd.FindModelByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, repo.InitialVersion, version)
	require.Equal(t, m.Name(), got.Name())
	require.Equal(t, m.OwnerID(), got.OwnerID())
	require.True(t, got.IsActive())
	require.True(t, got.CreatedAt().Equal(m.CreatedAt()))

	exists, err := cmd.Exists(ctx, id)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestCommand_SaveDuplicateName(t *testing.T) {
	ctx := context.Background()
	cmd := exampleSqlite.NewCommand(openDB(t), log.NewNop())

	_, err := cmd.Save(ctx, newModel(t, "Widget", "u1"))
	require.NoError(t, err)

	_, err = cmd.Save(ctx, newModel(t, "Widget", "u1"))
	require.ErrorIs(t, err, pkgErrors.ErrAlreadyExists)

	_, err = cmd.Save(ctx, newModel(t, "Widget", "u2"))
	require.NoError(t, err, "same name under another owner is allowed")
}

func TestCommand_FindMissing(t *testing.T) {
	cmd := exampleSqlite.NewCommand(openDB(t), log.NewNop())

	_, _, err := cmd.FindModelByID(context.Background(), "nope")
	require.ErrorIs(t, err, pkgErrors.ErrNotFound)
}

func TestCommand_OptimisticConcurrency(t *testing.T) {
	ctx := context.Background()
	cmd := exampleSqlite.NewCommand(openDB(t), log.NewNop())
	m := newModel(t, "Widget", "u1")
	_, err := cmd.Save(ctx, m)
	require.NoError(t, err)

	first, _, err := cmd.FindModelByID(ctx, m.ID())
	require.NoError(t, err)
	second, _, err := cmd.FindModelByID(ctx, m.ID())
	require.NoError(t, err)

	require.NoError(t, first.UpdateDetails("Widget A", "", now))
	v, err := cmd.Update(ctx, first, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, v)

	require.NoError(t, second.UpdateDetails("Widget B", "", now))
	_, err = cmd.Update(ctx, second, 1)
	require.ErrorIs(t, err, pkgErrors.ErrConflict)

	stored, version, err := cmd.FindModelByID(ctx, m.ID())
	require.NoError(t, err)
	require.EqualValues(t, 2, version)
	require.Equal(t, "Widget A", stored.Name())
}

func TestCommand_UpdateMissing(t *testing.T) {
	cmd := exampleSqlite.NewCommand(openDB(t), log.NewNop())

	_, err := cmd.Update(context.Background(), newModel(t, "Widget", "u1"), 1)
	require.ErrorIs(t, err, pkgErrors.ErrNotFound)
}

func TestCommand_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cmd := exampleSqlite.NewCommand(openDB(t), log.NewNop())
	m := newModel(t, "Widget", "u1")
	_, err := cmd.Save(ctx, m)
	require.NoError(t, err)

	require.NoError(t, cmd.Delete(ctx, m.ID()))
	require.NoError(t, cmd.Delete(ctx, m.ID()))

	exists, err := cmd.Exists(ctx, m.ID())
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCommand_JoinsUnitOfWork(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	cmd := exampleSqlite.NewCommand(db, log.NewNop())
	m := newModel(t, "Widget", "u1")

	err := uow.Run(ctx, uow.NewSQL(db, log.NewNop()), func(ctx context.Context) error {
		if _, err := cmd.Save(ctx, m); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	exists, err := cmd.Exists(ctx, m.ID())
	require.NoError(t, err)
	require.False(t, exists, "rolled back insert must not be visible")
}

func seedRead(t *testing.T, q repo.ReadModel, name, owner string, active bool, createdAt time.Time) repo.ReadEntity {
	t.Helper()
	m, err := example.Create(example.CreateParams{Name: name, OwnerID: owner}, createdAt)
	require.NoError(t, err)
	if !active {
		require.NoError(t, m.Deactivate(createdAt))
	}
	e := mapper.ModelToReadEntity(m, 1, example.UnknownOwnerName)
	require.NoError(t, q.Upsert(context.Background(), e))
	return e
}

func TestQuery_FindByID(t *testing.T) {
	ctx := context.Background()
	q := exampleSqlite.NewQuery(openDB(t), log.NewNop())

	_, found, err := q.FindByID(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	seeded := seedRead(t, q, "Widget", "u1", true, now)
	got, found, err := q.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Widget (u1)", got.DisplayName)
	require.Equal(t, "Active", got.StatusText)
	require.True(t, got.CreatedAt.Equal(now))
}

func TestQuery_ListOrderingPaginationAndFilters(t *testing.T) {
	ctx := context.Background()
	q := exampleSqlite.NewQuery(openDB(t), log.NewNop())

	var ids []string
	for i := 0; i < 5; i++ {
		owner := "u1"
		if i%2 == 1 {
			owner = "u2"
		}
		e := seedRead(t, q, fmt.Sprintf("item-%d", i), owner, i != 4, now.Add(time.Duration(i)*time.Minute))
		ids = append(ids, e.ID)
	}

	page1, err := q.List(ctx, repo.ListFilter{}, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Equal(t, ids[4], page1[0].ID, "newest first")
	require.Equal(t, ids[3], page1[1].ID)

	page3, err := q.List(ctx, repo.ListFilter{}, 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	require.Equal(t, ids[0], page3[0].ID)

	total, err := q.Count(ctx, repo.ListFilter{})
	require.NoError(t, err)
	require.Equal(t, 5, total)

	owned, err := q.Count(ctx, repo.ListFilter{OwnerID: "u2"})
	require.NoError(t, err)
	require.Equal(t, 2, owned)

	active := true
	activeCount, err := q.Count(ctx, repo.ListFilter{IsActive: &active})
	require.NoError(t, err)
	require.Equal(t, 4, activeCount)

	named, err := q.List(ctx, repo.ListFilter{NameContains: "item-2"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, named, 1)
	require.Equal(t, ids[2], named[0].ID)
}

func TestQuery_ListTieBreaksOnID(t *testing.T) {
	ctx := context.Background()
	q := exampleSqlite.NewQuery(openDB(t), log.NewNop())

	a := seedRead(t, q, "alpha", "u1", true, now)
	b := seedRead(t, q, "bravo", "u1", true, now)

	items, err := q.List(ctx, repo.ListFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	wantFirst := a.ID
	if b.ID > a.ID {
		wantFirst = b.ID
	}
	require.Equal(t, wantFirst, items[0].ID)
}

func TestQuery_UpsertIgnoresOlderVersions(t *testing.T) {
	ctx := context.Background()
	q := exampleSqlite.NewQuery(openDB(t), log.NewNop())
	e := seedRead(t, q, "Widget", "u1", true, now)

	newer := e
	newer.Name = "Widget v3"
	newer.Version = 3
	require.NoError(t, q.Upsert(ctx, newer))

	stale := e
	stale.Name = "Widget v2"
	stale.Version = 2
	require.NoError(t, q.Upsert(ctx, stale))

	got, _, err := q.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, "Widget v3", got.Name)

	require.NoError(t, q.Remove(ctx, e.ID))
	_, found, err := q.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.False(t, found)
}

func TestQuery_OwnerName(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	q := exampleSqlite.NewQuery(db, log.NewNop())

	name, err := q.OwnerName(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, example.UnknownOwnerName, name)

	_, err = db.Exec(`INSERT INTO owners (id, display_name) VALUES (?, ?)`, "u1", "Ada")
	require.NoError(t, err)

	name, err = q.OwnerName(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "Ada", name)
}
