package repositories

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanahq/amana-backend/models"
)

func mergeTableByName(t *testing.T, table string) models.MergeTable {
	t.Helper()
	for _, mt := range models.MergeTables {
		if mt.Table == table {
			return mt
		}
	}
	t.Fatalf("unknown merge table %s", table)
	return models.MergeTable{}
}

func TestReassignUserRowsReturnsTheTableKey(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	repo := NewAmanaDbRepository()

	t.Run("settings rows are keyed by key", func(t *testing.T) {
		pool.ExpectQuery(`UPDATE settings SET updated_by = \$1 WHERE updated_by = \$2 RETURNING key`).
			WithArgs(models.UserId("target_user"), models.UserId("source_user")).
			WillReturnRows(pgxmock.NewRows([]string{"key"}).AddRow("default_currency"))

		keys, err := repo.ReassignUserRows(context.Background(), pool,
			mergeTableByName(t, models.TableSettings), "source_user", "target_user")

		assert.NoError(t, err)
		assert.Equal(t, []string{"default_currency"}, keys)
	})

	t.Run("contributions rows are keyed by id", func(t *testing.T) {
		pool.ExpectQuery(`UPDATE contributions SET contributor_id = \$1 WHERE contributor_id = \$2 RETURNING id`).
			WithArgs(models.UserId("target_user"), models.UserId("source_user")).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("contribution_1").AddRow("contribution_2"))

		ids, err := repo.ReassignUserRows(context.Background(), pool,
			mergeTableByName(t, models.TableContributions), "source_user", "target_user")

		assert.NoError(t, err)
		assert.Equal(t, []string{"contribution_1", "contribution_2"}, ids)
	})

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestMergeTablesAllCarryAKeyColumn(t *testing.T) {
	for _, mt := range models.MergeTables {
		assert.NotEmpty(t, mt.KeyColumn, "merge table %s", mt.Table)
	}
}
