package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

//go:generate mockgen -source=challenge.go -destination=mocks/challenge.go -package=repo_mocks

type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, ch model.Challenge) (model.Challenge, error)
	GetChallenge(ctx context.Context, challengeUid string) (model.Challenge, error)
	ListChallenges(ctx context.Context, status model.ChallengeStatus) ([]model.Challenge, error)
	CreateParticipation(ctx context.Context, challengeID int, username string) (model.Participation, error)
	GetParticipation(ctx context.Context, participationUid string) (model.Participation, error)
	AdvanceProgress(ctx context.Context, participationUid string, delta int) (model.Participation, *model.Badge, error)
	ListOpenParticipationUids(ctx context.Context, username string, typ model.ChallengeType) ([]string, error)
	ListBadges(ctx context.Context, username string) ([]model.Badge, error)
}

type challengeRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewChallengeRepository(db *sqlx.DB, log *zap.Logger) (*challengeRepository, error) {
	return &challengeRepository{
		db:  db,
		log: log.Named("challenge-repo"),
	}, nil
}

const (
	challengesTableName   = `challenges`
	participantsTableName = `challenge_participants`
	badgesTableName       = `user_badges`
)

func (r *challengeRepository) CreateChallenge(ctx context.Context, ch model.Challenge) (model.Challenge, error) {
	q, args, err := qb.Insert(challengesTableName).
		Columns("challenge_uid", "name", "challenge_type", "target_count", "start_date", "end_date", "status", "badge_name", "badge_icon", "created_by").
		Values(uuid.New(), ch.Name, ch.Type, ch.TargetCount, ch.StartDate, ch.EndDate, model.ChallengeStatusActive, ch.BadgeName, ch.BadgeIcon, ch.CreatedBy).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Challenge{}, err
	}
	var res model.Challenge
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateChallenge", zap.String("q", q), zap.Any("args", args))
		return model.Challenge{}, err
	}
	return res, nil
}

func (r *challengeRepository) GetChallenge(ctx context.Context, challengeUid string) (model.Challenge, error) {
	q, args, err := qb.Select("id", "challenge_uid", "name", "challenge_type", "target_count", "start_date", "end_date", "status", "badge_name", "badge_icon", "created_by").
		From(challengesTableName).
		Where(sq.Eq{"challenge_uid": challengeUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Challenge{}, err
	}
	var ch model.Challenge
	if err := r.db.GetContext(ctx, &ch, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Challenge{}, errs.ErrNotFound
		}
		return model.Challenge{}, err
	}
	return ch, nil
}

func (r *challengeRepository) ListChallenges(ctx context.Context, status model.ChallengeStatus) ([]model.Challenge, error) {
	q := qb.Select("id", "challenge_uid", "name", "challenge_type", "target_count", "start_date", "end_date", "status", "badge_name", "badge_icon", "created_by").
		From(challengesTableName).
		OrderBy("start_date desc")
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Challenge
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateParticipation relies on the (challenge_id, username) uniqueness
// constraint: a duplicate join surfaces as ErrAlreadyJoined, not a generic
// store failure.
func (r *challengeRepository) CreateParticipation(ctx context.Context, challengeID int, username string) (model.Participation, error) {
	q, args, err := qb.Insert(participantsTableName).
		Columns("participation_uid", "challenge_id", "username").
		Values(uuid.New(), challengeID, username).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Participation{}, err
	}
	var p model.Participation
	if err := r.db.GetContext(ctx, &p, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Participation{}, errs.ErrAlreadyJoined
		}
		return model.Participation{}, err
	}
	return p, nil
}

func (r *challengeRepository) GetParticipation(ctx context.Context, participationUid string) (model.Participation, error) {
	q, args, err := qb.Select("id", "participation_uid", "challenge_id", "username", "progress", "completed", "completed_at", "joined_at").
		From(participantsTableName).
		Where(sq.Eq{"participation_uid": participationUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Participation{}, err
	}
	var p model.Participation
	if err := r.db.GetContext(ctx, &p, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Participation{}, errs.ErrNotFound
		}
		return model.Participation{}, err
	}
	return p, nil
}

// AdvanceProgress increments progress and, when the target is first reached,
// flips completed and issues the badge, all in one transaction. The flip is
// guarded by completed = false and the badge insert by the (username,
// challenge_id) unique index, so re-running completion is a no-op.
func (r *challengeRepository) AdvanceProgress(ctx context.Context, participationUid string, delta int) (model.Participation, *model.Badge, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Participation{}, nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	const incQ = `
update challenge_participants
    set progress = progress + $2
where participation_uid = $1
returning *`

	var p model.Participation
	if err := tx.GetContext(ctx, &p, incQ, participationUid, delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Participation{}, nil, errs.ErrNotFound
		}
		return model.Participation{}, nil, err
	}

	var ch model.Challenge
	const chQ = `select * from challenges where id = $1`
	if err := tx.GetContext(ctx, &ch, chQ, p.ChallengeID); err != nil {
		return model.Participation{}, nil, err
	}

	var badge *model.Badge
	if ch.TargetCount != nil && !p.Completed && p.Progress >= *ch.TargetCount {
		const completeQ = `
update challenge_participants
    set completed = true, completed_at = now()
where id = $1 and completed = false
returning *`
		if err := tx.GetContext(ctx, &p, completeQ, p.ID); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return model.Participation{}, nil, err
			}
			// lost the flip to a concurrent call; badge belongs to the winner
		} else {
			badge, err = r.issueBadge(ctx, tx, ch, p.Username)
			if err != nil {
				return model.Participation{}, nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Participation{}, nil, err
	}
	return p, badge, nil
}

func (r *challengeRepository) issueBadge(ctx context.Context, tx *sqlx.Tx, ch model.Challenge, username string) (*model.Badge, error) {
	name := ch.Name
	if ch.BadgeName != nil {
		name = *ch.BadgeName
	}
	icon := ""
	if ch.BadgeIcon != nil {
		icon = *ch.BadgeIcon
	}

	const q = `
insert into user_badges (username, badge_name, badge_icon, challenge_id)
values ($1, $2, $3, $4)
on conflict (username, challenge_id) do nothing
returning *`

	var b model.Badge
	if err := tx.GetContext(ctx, &b, q, username, name, icon, ch.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// badge already issued for this (user, challenge)
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// ListOpenParticipationUids returns the user's incomplete participations in
// running challenges of the given type.
func (r *challengeRepository) ListOpenParticipationUids(ctx context.Context, username string, typ model.ChallengeType) ([]string, error) {
	const q = `
select cp.participation_uid
from challenge_participants cp
         join challenges c on c.id = cp.challenge_id
where cp.username = $1
  and cp.completed = false
  and c.status = 'ACTIVE'
  and c.challenge_type = $2
  and now()::date between c.start_date and c.end_date`

	var uids []string
	if err := r.db.SelectContext(ctx, &uids, q, username, typ); err != nil {
		return nil, err
	}
	return uids, nil
}

func (r *challengeRepository) ListBadges(ctx context.Context, username string) ([]model.Badge, error) {
	q, args, err := qb.Select("id", "username", "badge_name", "badge_icon", "challenge_id", "earned_at").
		From(badgesTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("earned_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Badge
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
