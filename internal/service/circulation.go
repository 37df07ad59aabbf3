package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
	"github.com/edutech-lab/school-library-service/internal/repository"
	"github.com/edutech-lab/school-library-service/pkg/auth"
)

// DefaultLoanPeriod is the lending policy when no due date is supplied.
const DefaultLoanPeriod = 14 * 24 * time.Hour

type CirculationService struct {
	log  *zap.Logger
	repo repository.CirculationRepository
	now  func() time.Time
}

func NewCirculationService(repo repository.CirculationRepository, log *zap.Logger) *CirculationService {
	return &CirculationService{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
}

func (s *CirculationService) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *CirculationService) ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, showAll, page, size)
}

func (s *CirculationService) IssueBook(ctx context.Context, ident auth.Identity, req model.IssueBookRequest) (model.BorrowingRecord, error) {
	if !ident.IsLibrarian() {
		return model.BorrowingRecord{}, errs.ErrForbidden
	}

	dueDate := s.now().UTC().Add(DefaultLoanPeriod)
	if req.DueDate != "" {
		d, err := time.Parse(time.DateOnly, req.DueDate)
		if err != nil {
			return model.BorrowingRecord{}, err
		}
		dueDate = d
	}

	return s.repo.IssueBook(ctx, req.BookUid, req.Username, dueDate, ident.Username)
}

func (s *CirculationService) ReturnBook(ctx context.Context, ident auth.Identity, recordUid string) (model.BorrowingRecord, error) {
	if !ident.IsLibrarian() {
		return model.BorrowingRecord{}, errs.ErrForbidden
	}
	return s.repo.ReturnBook(ctx, recordUid)
}

func (s *CirculationService) ListBorrowings(ctx context.Context, username string) ([]model.BorrowingRecord, error) {
	return s.repo.ListBorrowings(ctx, username)
}

// ListOverdue refreshes the persisted overdue cache, then reports every unreturned
// record past due as of the given time.
func (s *CirculationService) ListOverdue(ctx context.Context, asOf time.Time) ([]model.OverdueRecord, error) {
	if asOf.IsZero() {
		asOf = s.now().UTC()
	}

	swept, err := s.repo.RefreshOverdue(ctx, asOf)
	if err != nil {
		return nil, err
	}
	if swept > 0 {
		s.log.Debug("overdue sweep", zap.Int64("records", swept))
	}

	records, err := s.repo.ListOverdue(ctx, asOf)
	if err != nil {
		return nil, err
	}

	overdue := make([]model.OverdueRecord, 0, len(records))
	for _, rec := range records {
		overdue = append(overdue, model.OverdueRecord{
			BorrowingRecord: rec,
			DaysOverdue:     DaysOverdue(rec, asOf),
		})
	}
	return overdue, nil
}
