package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sentinelQuery = `SELECT to_regclass\(\$1\) IS NOT NULL`

func TestEnsureMigrated_SchemaExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	core, logs := observer.New(zapcore.InfoLevel)

	mock.ExpectQuery(sentinelQuery).
		WithArgs(SentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, zap.New(core), "db.local")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, logs.FilterField(zap.String("event", "db_migration_skip")).Len())
}

func TestEnsureMigrated_CreatesSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	core, logs := observer.New(zapcore.InfoLevel)

	mock.ExpectQuery(sentinelQuery).
		WithArgs(SentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for _, step := range steps {
		mock.ExpectExec(regexp.QuoteMeta(step.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = EnsureMigrated(context.Background(), db, zap.New(core), "db.local")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	done := logs.FilterMessage("db_migration_success").All()
	require.Len(t, done, 1)
	assert.Equal(t, "db.local", done[0].ContextMap()["db_host"])
	assert.EqualValues(t, len(steps), done[0].ContextMap()["steps"])
}

func TestEnsureMigrated_StepFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	core, logs := observer.New(zapcore.ErrorLevel)

	mock.ExpectQuery(sentinelQuery).
		WithArgs(SentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(steps[0].SQL)).WillReturnError(errors.New("permission denied"))

	err = EnsureMigrated(context.Background(), db, zap.New(core), "db.local")

	require.Error(t, err)
	assert.Contains(t, err.Error(), steps[0].Name)
	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())

	failed := logs.FilterMessage("db_migration_failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, steps[0].Name, failed[0].ContextMap()["migration_step"])
}

func TestEnsureMigrated_SentinelError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(sentinelQuery).
		WithArgs(SentinelTable).
		WillReturnError(errors.New("connection refused"))

	err = EnsureMigrated(context.Background(), db, zap.NewNop(), "db.local")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "check sentinel table")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSteps_CoverEveryTable(t *testing.T) {
	tables := []string{"alerts", "news", "support_points", "organizations", "supply_needs", "volunteer_jobs", "guides"}
	names := make(map[string]bool, len(steps))
	for _, step := range steps {
		assert.False(t, names[step.Name], "duplicate step %s", step.Name)
		names[step.Name] = true
	}
	for _, table := range tables {
		assert.True(t, names["create_table_"+table], table)
	}
}
