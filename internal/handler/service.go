package handler

import (
	"context"
	"time"

	"github.com/edutech-lab/school-library-service/internal/model"
	"github.com/edutech-lab/school-library-service/pkg/auth"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type CirculationService interface {
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error)
	IssueBook(ctx context.Context, ident auth.Identity, req model.IssueBookRequest) (model.BorrowingRecord, error)
	ReturnBook(ctx context.Context, ident auth.Identity, recordUid string) (model.BorrowingRecord, error)
	ListBorrowings(ctx context.Context, username string) ([]model.BorrowingRecord, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]model.OverdueRecord, error)
}

type ChallengeService interface {
	CreateChallenge(ctx context.Context, ident auth.Identity, req model.CreateChallengeRequest) (model.Challenge, error)
	ListChallenges(ctx context.Context, status model.ChallengeStatus) ([]model.Challenge, error)
	JoinChallenge(ctx context.Context, ident auth.Identity, challengeUid string) (model.Participation, error)
	GetParticipation(ctx context.Context, participationUid string) (model.Participation, error)
	AdvanceProgress(ctx context.Context, ident auth.Identity, participationUid string, delta int) (model.AdvanceProgressResponse, error)
	RecordReturn(ctx context.Context, username string) error
	ListBadges(ctx context.Context, username string) ([]model.Badge, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, ident auth.Identity, bookUid string, req model.CreateReviewRequest) (model.Review, error)
	ModerateReview(ctx context.Context, ident auth.Identity, reviewUid string, decision model.ReviewStatus) (model.Review, error)
	BulkApprove(ctx context.Context, ident auth.Identity, reviewUids []string) (model.BulkApproveResponse, error)
	ListReviews(ctx context.Context, bookUid string, status model.ReviewStatus) ([]model.Review, error)
}
