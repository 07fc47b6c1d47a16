package postgresql_test

import (
	"context"
	"os"

	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection used by the integration tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL. ok is false when the variable
// is unset so callers can skip.
func NewTestDatabase(ctx context.Context) (setup *TestDatabaseSetup, ok bool, err error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, false, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		return nil, true, err
	}
	if err := postgresql.MigrateKV(ctx, db); err != nil {
		db.Close()
		return nil, true, err
	}
	return &TestDatabaseSetup{DB: db}, true, nil
}

// TruncateKV removes every stored blob.
func (t *TestDatabaseSetup) TruncateKV(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, "TRUNCATE TABLE kv_blobs")
	return err
}
