package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

func TestHandler_JoinChallenge(t *testing.T) {
	const challengeUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"

	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/challenges/:challengeUid/join", env.handler.JoinChallenge, withIdentity(student))

		env.challenge.EXPECT().
			JoinChallenge(gomock.Any(), student, challengeUid).
			Return(model.Participation{
				ID:               1,
				ParticipationUid: "1b3563c1-5a88-4bbe-9a6a-24b4ff52c161",
				ChallengeID:      7,
				Username:         "emma",
				Progress:         0,
				Completed:        false,
				JoinedAt:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			}, nil)

		r := httptest.NewRequest(http.MethodPost, "/challenges/"+challengeUid+"/join", http.NoBody)
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t,
			`{"id":1,"participationUid":"1b3563c1-5a88-4bbe-9a6a-24b4ff52c161","challengeId":7,"username":"emma","progress":0,"completed":false,"joinedAt":"2026-03-01T10:00:00Z"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. already joined", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/challenges/:challengeUid/join", env.handler.JoinChallenge, withIdentity(student))

		env.challenge.EXPECT().
			JoinChallenge(gomock.Any(), student, challengeUid).
			Return(model.Participation{}, errs.ErrAlreadyJoined)

		r := httptest.NewRequest(http.MethodPost, "/challenges/"+challengeUid+"/join", http.NoBody)
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, `{"message":"already joined challenge"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. not active", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/challenges/:challengeUid/join", env.handler.JoinChallenge, withIdentity(student))

		env.challenge.EXPECT().
			JoinChallenge(gomock.Any(), student, challengeUid).
			Return(model.Participation{}, errs.ErrChallengeNotActive)

		r := httptest.NewRequest(http.MethodPost, "/challenges/"+challengeUid+"/join", http.NoBody)
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, `{"message":"challenge is not active"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/challenges/:challengeUid/join", env.handler.JoinChallenge, withIdentity(student))

		env.challenge.EXPECT().
			JoinChallenge(gomock.Any(), student, challengeUid).
			Return(model.Participation{}, errs.ErrNotFound)

		r := httptest.NewRequest(http.MethodPost, "/challenges/"+challengeUid+"/join", http.NoBody)
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_AdvanceProgress(t *testing.T) {
	const participationUid = "1b3563c1-5a88-4bbe-9a6a-24b4ff52c161"

	t.Run("ok with badge on completion", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/participations/:participationUid/progress", env.handler.AdvanceProgress, withIdentity(librarian))

		completedAt := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)
		challengeID := 7
		env.challenge.EXPECT().
			AdvanceProgress(gomock.Any(), librarian, participationUid, 1).
			Return(model.AdvanceProgressResponse{
				Participation: model.Participation{
					ID:               1,
					ParticipationUid: participationUid,
					ChallengeID:      7,
					Username:         "emma",
					Progress:         3,
					Completed:        true,
					CompletedAt:      &completedAt,
					JoinedAt:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
				},
				Badge: &model.Badge{
					ID:          1,
					Username:    "emma",
					BadgeName:   "Bookworm",
					BadgeIcon:   "bookworm.png",
					ChallengeID: &challengeID,
					EarnedAt:    completedAt,
				},
			}, nil)

		r := httptest.NewRequest(http.MethodPost, "/participations/"+participationUid+"/progress", strings.NewReader(`{"delta":1}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"participation":{"id":1,"participationUid":"1b3563c1-5a88-4bbe-9a6a-24b4ff52c161","challengeId":7,"username":"emma","progress":3,"completed":true,"completedAt":"2026-03-20T15:00:00Z","joinedAt":"2026-03-01T10:00:00Z"},"badge":{"id":1,"username":"emma","badgeName":"Bookworm","badgeIcon":"bookworm.png","challengeId":7,"earnedAt":"2026-03-20T15:00:00Z"}}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. delta must be positive", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/participations/:participationUid/progress", env.handler.AdvanceProgress, withIdentity(librarian))

		r := httptest.NewRequest(http.MethodPost, "/participations/"+participationUid+"/progress", strings.NewReader(`{"delta":-1}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("err. participation not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/participations/:participationUid/progress", env.handler.AdvanceProgress, withIdentity(librarian))

		env.challenge.EXPECT().
			AdvanceProgress(gomock.Any(), librarian, participationUid, 1).
			Return(model.AdvanceProgressResponse{}, errs.ErrNotFound)

		r := httptest.NewRequest(http.MethodPost, "/participations/"+participationUid+"/progress", strings.NewReader(`{"delta":1}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_CreateChallenge(t *testing.T) {
	t.Run("err. teacher forbidden type", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/challenges", env.handler.CreateChallenge, withIdentity(teacher))

		env.challenge.EXPECT().
			CreateChallenge(gomock.Any(), teacher, gomock.Any()).
			Return(model.Challenge{}, errs.ErrForbidden)

		body := `{"name":"Read 3 Books","type":"BOOK_COUNT","targetCount":3,"startDate":"2026-03-01","endDate":"2026-06-01"}`
		r := httptest.NewRequest(http.MethodPost, "/challenges", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("err. unknown type rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/challenges", env.handler.CreateChallenge, withIdentity(librarian))

		body := `{"name":"Mystery","type":"MYSTERY","startDate":"2026-03-01","endDate":"2026-06-01"}`
		r := httptest.NewRequest(http.MethodPost, "/challenges", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
