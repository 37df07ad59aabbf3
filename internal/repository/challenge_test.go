package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	participationCols = []string{
		"id", "participation_uid", "challenge_id", "username",
		"progress", "completed", "completed_at", "joined_at",
	}
	challengeCols = []string{
		"id", "challenge_uid", "name", "challenge_type", "target_count",
		"start_date", "end_date", "status", "badge_name", "badge_icon", "created_by",
	}
	badgeCols = []string{"id", "username", "badge_name", "badge_icon", "challenge_id", "earned_at"}
)

func challengeRow() *sqlmock.Rows {
	return sqlmock.NewRows(challengeCols).AddRow(
		7, "83575e12-7ce0-48ee-9931-51919ff3c9ee", "Read 3 Books", "BOOK_COUNT", 3,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		"ACTIVE", "Bookworm", "bookworm.png", "ms-reed")
}

func TestChallengeRepository_AdvanceProgress_CompletesAtTarget(t *testing.T) {
	const participationUid = "1b3563c1-5a88-4bbe-9a6a-24b4ff52c161"
	joinedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	repo, err := NewChallengeRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("update challenge_participants").
		WithArgs(participationUid, 1).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(11, participationUid, 7, "emma", 3, false, nil, joinedAt))
	mock.ExpectQuery("select \\* from challenges").
		WithArgs(7).
		WillReturnRows(challengeRow())
	mock.ExpectQuery("update challenge_participants").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(11, participationUid, 7, "emma", 3, true, completedAt, joinedAt))
	mock.ExpectQuery("insert into user_badges").
		WithArgs("emma", "Bookworm", "bookworm.png", 7).
		WillReturnRows(sqlmock.NewRows(badgeCols).
			AddRow(1, "emma", "Bookworm", "bookworm.png", 7, completedAt))
	mock.ExpectCommit()

	p, badge, err := repo.AdvanceProgress(context.Background(), participationUid, 1)
	require.NoError(t, err)
	require.True(t, p.Completed)
	require.Equal(t, 3, p.Progress)
	require.NotNil(t, badge)
	require.Equal(t, "Bookworm", badge.BadgeName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChallengeRepository_AdvanceProgress_AlreadyCompletedNoOp(t *testing.T) {
	const participationUid = "1b3563c1-5a88-4bbe-9a6a-24b4ff52c161"
	joinedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	repo, err := NewChallengeRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)

	// progress keeps counting past the target but the completion flip and the
	// badge are not re-run
	mock.ExpectBegin()
	mock.ExpectQuery("update challenge_participants").
		WithArgs(participationUid, 1).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(11, participationUid, 7, "emma", 4, true, completedAt, joinedAt))
	mock.ExpectQuery("select \\* from challenges").
		WithArgs(7).
		WillReturnRows(challengeRow())
	mock.ExpectCommit()

	p, badge, err := repo.AdvanceProgress(context.Background(), participationUid, 1)
	require.NoError(t, err)
	require.True(t, p.Completed)
	require.Equal(t, 4, p.Progress)
	require.Nil(t, badge)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChallengeRepository_AdvanceProgress_BadgeAlreadyIssued(t *testing.T) {
	const participationUid = "1b3563c1-5a88-4bbe-9a6a-24b4ff52c161"
	joinedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	repo, err := NewChallengeRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)

	// ON CONFLICT DO NOTHING returns no row when the badge exists; the call
	// still succeeds, just without a badge
	mock.ExpectBegin()
	mock.ExpectQuery("update challenge_participants").
		WithArgs(participationUid, 1).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(11, participationUid, 7, "emma", 3, false, nil, joinedAt))
	mock.ExpectQuery("select \\* from challenges").
		WithArgs(7).
		WillReturnRows(challengeRow())
	mock.ExpectQuery("update challenge_participants").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(11, participationUid, 7, "emma", 3, true, completedAt, joinedAt))
	mock.ExpectQuery("insert into user_badges").
		WithArgs("emma", "Bookworm", "bookworm.png", 7).
		WillReturnRows(sqlmock.NewRows(badgeCols))
	mock.ExpectCommit()

	p, badge, err := repo.AdvanceProgress(context.Background(), participationUid, 1)
	require.NoError(t, err)
	require.True(t, p.Completed)
	require.Nil(t, badge)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChallengeRepository_AdvanceProgress_LostCompletionRace(t *testing.T) {
	const participationUid = "1b3563c1-5a88-4bbe-9a6a-24b4ff52c161"
	joinedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	repo, err := NewChallengeRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)

	// the guarded flip matched no row because a concurrent call completed the
	// participation first; that call owns the badge
	mock.ExpectBegin()
	mock.ExpectQuery("update challenge_participants").
		WithArgs(participationUid, 1).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(11, participationUid, 7, "emma", 3, false, nil, joinedAt))
	mock.ExpectQuery("select \\* from challenges").
		WithArgs(7).
		WillReturnRows(challengeRow())
	mock.ExpectQuery("update challenge_participants").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(participationCols))
	mock.ExpectCommit()

	_, badge, err := repo.AdvanceProgress(context.Background(), participationUid, 1)
	require.NoError(t, err)
	require.Nil(t, badge)
	require.NoError(t, mock.ExpectationsWereMet())
}
