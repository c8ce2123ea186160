package category

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storefront-api/internal/storage"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgres_FindAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectCategories)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Fruits").
			AddRow(int64(2), "Nuts"))

	categories, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, &Category{ID: 2, Name: "Nuts"}, categories[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectCategoryByID)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "category1"))

	v, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &Category{ID: 1, Name: "category1"}, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectCategoryByID)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPostgres_SaveNew(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(insertCategory)).
		WithArgs("category4").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	in := &Category{Name: "category4"}
	saved, err := repo.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.ID)
	assert.Zero(t, in.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveExisting(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta(upsertCategory)).
		WithArgs(int64(3), "renamed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(syncCategorySequence)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	saved, err := repo.Save(context.Background(), &Category{ID: 3, Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, &Category{ID: 3, Name: "renamed"}, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteCategory)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), 8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveExistingOnlyAdvancesSequence(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta(upsertCategory)).
		WithArgs(int64(1), "Fruits").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// rewriting a low id must not pull the sequence back to MAX(id)
	mock.ExpectExec(regexp.QuoteMeta(
		"SELECT setval(pg_get_serial_sequence('categories', 'id'), GREATEST($1, (SELECT last_value FROM categories_id_seq)))")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Save(context.Background(), &Category{ID: 1, Name: "Fruits"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
