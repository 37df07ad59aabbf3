package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCirculationRepository_IssueBook_Classification(t *testing.T) {
	const bookUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	dueDate := time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC)

	t.Run("missing book", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo, err := NewCirculationRepository(db, zap.NewExample().Named("test"))
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery("update books").
			WithArgs(bookUid).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("select exists").
			WithArgs(bookUid).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err = repo.IssueBook(context.Background(), bookUid, "emma", dueDate, "ms-reed")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("book exists but no copies left", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo, err := NewCirculationRepository(db, zap.NewExample().Named("test"))
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery("update books").
			WithArgs(bookUid).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("select exists").
			WithArgs(bookUid).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err = repo.IssueBook(context.Background(), bookUid, "emma", dueDate, "ms-reed")
		require.ErrorIs(t, err, errs.ErrNoCopies)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCirculationRepository_ReturnBook_Classification(t *testing.T) {
	const recordUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"

	t.Run("already returned", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo, err := NewCirculationRepository(db, zap.NewExample().Named("test"))
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery("update borrowing_records").
			WithArgs(recordUid).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("select status from borrowing_records").
			WithArgs(recordUid).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(model.RecordStatusReturned)))
		mock.ExpectRollback()

		_, err = repo.ReturnBook(context.Background(), recordUid)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("record not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo, err := NewCirculationRepository(db, zap.NewExample().Named("test"))
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery("update borrowing_records").
			WithArgs(recordUid).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("select status from borrowing_records").
			WithArgs(recordUid).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		_, err = repo.ReturnBook(context.Background(), recordUid)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCirculationRepository_ListBooks_NegativePaging(t *testing.T) {
	db, mock := newMockDB(t)
	repo, err := NewCirculationRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)

	// negative page must not turn into a wrapped-around OFFSET
	mock.ExpectQuery("FROM books ORDER BY id$").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "book_uid", "title", "author", "genre", "total_copies", "available_copies"}).
			AddRow(1, "83575e12-7ce0-48ee-9931-51919ff3c9ee", "Matilda", "Roald Dahl", "FICTION", 3, 2))

	books, err := repo.ListBooks(context.Background(), true, -1, 10)
	require.NoError(t, err)
	require.Len(t, books.Items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
