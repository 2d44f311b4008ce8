package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	repo "oddly-ddd/internal/example/repository"
	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/log"
)

type implCommandRepository struct {
	db *sql.DB
	l  log.Logger
}

type implQueryRepository struct {
	db *sql.DB
	l  log.Logger
}

// NewCommand creates the command store over the example_write table.
func NewCommand(db *sql.DB, l log.Logger) repo.CommandRepository {
	if db == nil {
		panic("example/repository/sqlite: db is required")
	}
	return &implCommandRepository{db: db, l: l}
}

// NewQuery creates the query store over the example_read and owners tables.
func NewQuery(db *sql.DB, l log.Logger) repo.ReadModel {
	if db == nil {
		panic("example/repository/sqlite: db is required")
	}
	return &implQueryRepository{db: db, l: l}
}

func (r *implCommandRepository) dsn(method string) string {
	return fmt.Sprintf("example/repository/sqlite.command.%s", method)
}

func (r *implQueryRepository) dsn(method string) string {
	return fmt.Sprintf("example/repository/sqlite.query.%s", method)
}

// failure classifies an infrastructure error as Unknown, keeping sentinel and cause reachable.
func failure(sentinel, cause error) error {
	return pkgErrors.Wrap(pkgErrors.CodeUnknown, fmt.Errorf("%w: %v", sentinel, cause), sentinel.Error())
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toUnix(t time.Time) int64 { return t.UTC().UnixNano() }

func fromUnix(n int64) time.Time { return time.Unix(0, n).UTC() }
