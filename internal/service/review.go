package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
	"github.com/edutech-lab/school-library-service/internal/repository"
	"github.com/edutech-lab/school-library-service/pkg/auth"
)

type ReviewService struct {
	log  *zap.Logger
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository, log *zap.Logger) *ReviewService {
	return &ReviewService{
		log:  log,
		repo: repo,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, ident auth.Identity, bookUid string, req model.CreateReviewRequest) (model.Review, error) {
	return s.repo.CreateReview(ctx, bookUid, ident.Username, req.Rating, req.Text)
}

func (s *ReviewService) ModerateReview(ctx context.Context, ident auth.Identity, reviewUid string, decision model.ReviewStatus) (model.Review, error) {
	if !ident.IsLibrarian() {
		return model.Review{}, errs.ErrForbidden
	}
	return s.repo.ModerateReview(ctx, reviewUid, decision, ident.Username)
}

func (s *ReviewService) BulkApprove(ctx context.Context, ident auth.Identity, reviewUids []string) (model.BulkApproveResponse, error) {
	if !ident.IsLibrarian() {
		return model.BulkApproveResponse{}, errs.ErrForbidden
	}
	approved, err := s.repo.BulkApprove(ctx, reviewUids, ident.Username)
	if err != nil {
		return model.BulkApproveResponse{}, err
	}
	return model.BulkApproveResponse{
		Approved: int(approved),
		Skipped:  len(reviewUids) - int(approved),
	}, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, bookUid string, status model.ReviewStatus) ([]model.Review, error) {
	return s.repo.ListReviews(ctx, bookUid, status)
}
