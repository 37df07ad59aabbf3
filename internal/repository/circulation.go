package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

//go:generate mockgen -source=circulation.go -destination=mocks/circulation.go -package=repo_mocks

type CirculationRepository interface {
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error)
	IssueBook(ctx context.Context, bookUid, username string, dueDate time.Time, issuedBy string) (model.BorrowingRecord, error)
	ReturnBook(ctx context.Context, recordUid string) (model.BorrowingRecord, error)
	ListBorrowings(ctx context.Context, username string) ([]model.BorrowingRecord, error)
	RefreshOverdue(ctx context.Context, asOf time.Time) (int64, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]model.BorrowingRecord, error)
}

type circulationRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewCirculationRepository(db *sqlx.DB, log *zap.Logger) (*circulationRepository, error) {
	return &circulationRepository{
		db:  db,
		log: log.Named("circulation-repo"),
	}, nil
}

const (
	booksTableName   = `books`
	recordsTableName = `borrowing_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *circulationRepository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	query, args, err := qb.Select("id", "book_uid", "title", "author", "genre", "total_copies", "available_copies").
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}

	return book, nil
}

func (r *circulationRepository) ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error) {
	q := qb.Select("id", "book_uid", "title", "author", "genre", "total_copies", "available_copies").
		From(booksTableName).
		OrderBy("id")

	if !showAll {
		q = q.Where(sq.Gt{"available_copies": 0})
	}
	// guard the uint conversion: a negative page or size must not wrap into a huge offset
	if page > 0 && size > 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

// IssueBook decrements available_copies and creates the borrowing record as one
// transaction. The decrement is conditional on available_copies > 0 so concurrent
// issues cannot race past zero.
func (r *circulationRepository) IssueBook(ctx context.Context, bookUid, username string, dueDate time.Time, issuedBy string) (model.BorrowingRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	const decQ = `
update books
    set available_copies = available_copies - 1
where book_uid = $1 and available_copies > 0
returning id`

	var bookID int
	if err := tx.QueryRowContext(ctx, decQ, bookUid).Scan(&bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, r.classifyIssueFailure(ctx, bookUid)
		}
		return model.BorrowingRecord{}, err
	}

	q, args, err := qb.Insert(recordsTableName).
		Columns("record_uid", "book_id", "username", "status", "borrowed_at", "due_date", "issued_by").
		Values(uuid.New(), bookID, username, model.RecordStatusBorrowed, time.Now().UTC(), dueDate.Format(time.DateOnly), issuedBy).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	var rec model.BorrowingRecord
	if err := tx.GetContext(ctx, &rec, q, args...); err != nil {
		r.log.Error("IssueBook insert", zap.String("q", q), zap.Any("args", args))
		return model.BorrowingRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.BorrowingRecord{}, err
	}
	return rec, nil
}

// classifyIssueFailure tells a missing book apart from an exhausted one.
func (r *circulationRepository) classifyIssueFailure(ctx context.Context, bookUid string) error {
	var exists bool
	q := `select exists(select 1 from books where book_uid = $1)`
	if err := r.db.QueryRowContext(ctx, q, bookUid).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return errs.ErrNoCopies
}

// ReturnBook flips the record to RETURNED and gives the copy back. The status
// flip is conditional so a second return of the same record fails instead of
// incrementing availability twice. LEAST caps the counter at total_copies.
func (r *circulationRepository) ReturnBook(ctx context.Context, recordUid string) (model.BorrowingRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	const retQ = `
update borrowing_records
    set status = 'RETURNED', returned_at = now()
where record_uid = $1 and status in ('BORROWED', 'OVERDUE')
returning *`

	var rec model.BorrowingRecord
	if err := tx.GetContext(ctx, &rec, retQ, recordUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, r.classifyReturnFailure(ctx, recordUid)
		}
		return model.BorrowingRecord{}, err
	}

	const incQ = `
update books
    set available_copies = least(available_copies + 1, total_copies)
where id = $1`
	if _, err := tx.ExecContext(ctx, incQ, rec.BookID); err != nil {
		return model.BorrowingRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.BorrowingRecord{}, err
	}
	return rec, nil
}

func (r *circulationRepository) classifyReturnFailure(ctx context.Context, recordUid string) error {
	var status model.RecordStatus
	q := `select status from borrowing_records where record_uid = $1`
	if err := r.db.QueryRowContext(ctx, q, recordUid).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return errs.ErrAlreadyReturned
}

func (r *circulationRepository) ListBorrowings(ctx context.Context, username string) ([]model.BorrowingRecord, error) {
	q, args, err := qb.Select("id", "record_uid", "book_id", "username", "status", "borrowed_at", "due_date", "returned_at", "issued_by").
		From(recordsTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("borrowed_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BorrowingRecord
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// RefreshOverdue persists the overdue predicate for records past due. The stored
// OVERDUE status is a cache of the predicate, never an independent authority.
func (r *circulationRepository) RefreshOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	const q = `
update borrowing_records
    set status = 'OVERDUE'
where status = 'BORROWED' and due_date < $1`
	res, err := r.db.ExecContext(ctx, q, asOf.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *circulationRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]model.BorrowingRecord, error) {
	q, args, err := qb.Select("id", "record_uid", "book_id", "username", "status", "borrowed_at", "due_date", "returned_at", "issued_by").
		From(recordsTableName).
		Where(sq.NotEq{"status": model.RecordStatusReturned}).
		Where(sq.Lt{"due_date": asOf.Format(time.DateOnly)}).
		OrderBy("due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BorrowingRecord
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
