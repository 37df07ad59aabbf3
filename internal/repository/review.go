package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

//go:generate mockgen -source=review.go -destination=mocks/review.go -package=repo_mocks

type ReviewRepository interface {
	CreateReview(ctx context.Context, bookUid, username string, rating int, text *string) (model.Review, error)
	ModerateReview(ctx context.Context, reviewUid string, decision model.ReviewStatus, moderatedBy string) (model.Review, error)
	BulkApprove(ctx context.Context, reviewUids []string, moderatedBy string) (int64, error)
	ListReviews(ctx context.Context, bookUid string, status model.ReviewStatus) ([]model.Review, error)
}

type reviewRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewReviewRepository(db *sqlx.DB, log *zap.Logger) (*reviewRepository, error) {
	return &reviewRepository{
		db:  db,
		log: log.Named("review-repo"),
	}, nil
}

const reviewsTableName = `reviews`

func (r *reviewRepository) CreateReview(ctx context.Context, bookUid, username string, rating int, text *string) (model.Review, error) {
	var bookID int
	const bookQ = `select id from books where book_uid = $1`
	if err := r.db.QueryRowContext(ctx, bookQ, bookUid).Scan(&bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}

	q, args, err := qb.Insert(reviewsTableName).
		Columns("review_uid", "book_id", "username", "rating", "review_text", "status").
		Values(uuid.New(), bookID, username, rating, text, model.ReviewStatusPending).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var rev model.Review
	if err := r.db.GetContext(ctx, &rev, q, args...); err != nil {
		r.log.Error("CreateReview", zap.String("q", q), zap.Any("args", args))
		return model.Review{}, err
	}
	return rev, nil
}

// ModerateReview decides a review exactly once: the update only matches
// still-pending rows, so a second decision fails with ErrAlreadyModerated.
func (r *reviewRepository) ModerateReview(ctx context.Context, reviewUid string, decision model.ReviewStatus, moderatedBy string) (model.Review, error) {
	const q = `
update reviews
    set status = $2, moderated_by = $3, moderated_at = now()
where review_uid = $1 and status = 'PENDING'
returning *`

	var rev model.Review
	if err := r.db.GetContext(ctx, &rev, q, reviewUid, decision, moderatedBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, r.classifyModerateFailure(ctx, reviewUid)
		}
		return model.Review{}, err
	}
	return rev, nil
}

func (r *reviewRepository) classifyModerateFailure(ctx context.Context, reviewUid string) error {
	var exists bool
	const q = `select exists(select 1 from reviews where review_uid = $1)`
	if err := r.db.QueryRowContext(ctx, q, reviewUid).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return errs.ErrAlreadyModerated
}

// BulkApprove approves the still-pending reviews in the batch and silently
// skips the rest.
func (r *reviewRepository) BulkApprove(ctx context.Context, reviewUids []string, moderatedBy string) (int64, error) {
	q, args, err := qb.Update(reviewsTableName).
		Set("status", model.ReviewStatusApproved).
		Set("moderated_by", moderatedBy).
		Set("moderated_at", sq.Expr("now()")).
		Where(sq.Eq{"review_uid": reviewUids, "status": model.ReviewStatusPending}).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *reviewRepository) ListReviews(ctx context.Context, bookUid string, status model.ReviewStatus) ([]model.Review, error) {
	q := qb.Select("r.id", "review_uid", "book_id", "r.username", "rating", "review_text", "r.status", "created_at", "moderated_by", "moderated_at").
		From(reviewsTableName + " r").
		Join("books b on b.id = r.book_id").
		Where(sq.Eq{"b.book_uid": bookUid}).
		OrderBy("created_at desc")
	if status != "" {
		q = q.Where(sq.Eq{"r.status": status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Review
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
