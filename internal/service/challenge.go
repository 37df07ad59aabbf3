package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
	"github.com/edutech-lab/school-library-service/internal/repository"
	"github.com/edutech-lab/school-library-service/pkg/auth"
)

type ChallengeService struct {
	log  *zap.Logger
	repo repository.ChallengeRepository
}

func NewChallengeService(repo repository.ChallengeRepository, log *zap.Logger) *ChallengeService {
	return &ChallengeService{
		log:  log,
		repo: repo,
	}
}

// CanCreateChallengeType is the capability check for challenge creation:
// librarians may create any type, teachers only class and house competitions.
func CanCreateChallengeType(role auth.Role, typ model.ChallengeType) bool {
	switch role {
	case auth.RoleLibrarian:
		return true
	case auth.RoleTeacher:
		return typ == model.ChallengeClassCompetition || typ == model.ChallengeHouseCompetition
	default:
		return false
	}
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, ident auth.Identity, req model.CreateChallengeRequest) (model.Challenge, error) {
	if !CanCreateChallengeType(ident.Role, req.Type) {
		return model.Challenge{}, errs.ErrForbidden
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return model.Challenge{}, err
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return model.Challenge{}, err
	}

	return s.repo.CreateChallenge(ctx, model.Challenge{
		Name:        req.Name,
		Type:        req.Type,
		TargetCount: req.TargetCount,
		StartDate:   startDate,
		EndDate:     endDate,
		BadgeName:   req.BadgeName,
		BadgeIcon:   req.BadgeIcon,
		CreatedBy:   ident.Username,
	})
}

func (s *ChallengeService) GetChallenge(ctx context.Context, challengeUid string) (model.Challenge, error) {
	return s.repo.GetChallenge(ctx, challengeUid)
}

func (s *ChallengeService) ListChallenges(ctx context.Context, status model.ChallengeStatus) ([]model.Challenge, error) {
	return s.repo.ListChallenges(ctx, status)
}

func (s *ChallengeService) JoinChallenge(ctx context.Context, ident auth.Identity, challengeUid string) (model.Participation, error) {
	ch, err := s.repo.GetChallenge(ctx, challengeUid)
	if err != nil {
		return model.Participation{}, err
	}
	if ch.Status != model.ChallengeStatusActive {
		return model.Participation{}, errs.ErrChallengeNotActive
	}
	return s.repo.CreateParticipation(ctx, ch.ID, ident.Username)
}

func (s *ChallengeService) GetParticipation(ctx context.Context, participationUid string) (model.Participation, error) {
	return s.repo.GetParticipation(ctx, participationUid)
}

func (s *ChallengeService) AdvanceProgress(ctx context.Context, ident auth.Identity, participationUid string, delta int) (model.AdvanceProgressResponse, error) {
	if !ident.IsLibrarian() {
		return model.AdvanceProgressResponse{}, errs.ErrForbidden
	}
	p, badge, err := s.repo.AdvanceProgress(ctx, participationUid, delta)
	if err != nil {
		return model.AdvanceProgressResponse{}, err
	}
	return model.AdvanceProgressResponse{Participation: p, Badge: badge}, nil
}

// RecordReturn advances every open BOOK_COUNT participation of the user by one.
// It is the consumer side of the book-returned event stream.
func (s *ChallengeService) RecordReturn(ctx context.Context, username string) error {
	uids, err := s.repo.ListOpenParticipationUids(ctx, username, model.ChallengeBookCount)
	if err != nil {
		return err
	}

	gg, ctx := errgroup.WithContext(ctx)
	gg.SetLimit(4)
	for _, uid := range uids {
		uid := uid
		gg.Go(func() error {
			if _, _, err := s.repo.AdvanceProgress(ctx, uid, 1); err != nil {
				s.log.Error("RecordReturn advance", zap.String("participation", uid), zap.Error(err))
			}
			return nil
		})
	}
	return gg.Wait()
}

func (s *ChallengeService) ListBadges(ctx context.Context, username string) ([]model.Badge, error) {
	return s.repo.ListBadges(ctx, username)
}
