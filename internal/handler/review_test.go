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

func TestHandler_ModerateReview(t *testing.T) {
	const reviewUid = "9d2e65c4-40b4-45a9-b088-cbad28180ad2"

	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/reviews/:reviewUid/moderate", env.handler.ModerateReview, withIdentity(librarian))

		moderatedBy := "ms-reed"
		moderatedAt := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)
		env.review.EXPECT().
			ModerateReview(gomock.Any(), librarian, reviewUid, model.ReviewStatusApproved).
			Return(model.Review{
				ID:          1,
				ReviewUid:   reviewUid,
				BookID:      3,
				Username:    "emma",
				Rating:      5,
				Status:      model.ReviewStatusApproved,
				CreatedAt:   time.Date(2026, 3, 18, 8, 0, 0, 0, time.UTC),
				ModeratedBy: &moderatedBy,
				ModeratedAt: &moderatedAt,
			}, nil)

		r := httptest.NewRequest(http.MethodPost, "/reviews/"+reviewUid+"/moderate", strings.NewReader(`{"decision":"APPROVED"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"id":1,"reviewUid":"9d2e65c4-40b4-45a9-b088-cbad28180ad2","bookId":3,"username":"emma","rating":5,"status":"APPROVED","createdAt":"2026-03-18T08:00:00Z","moderatedBy":"ms-reed","moderatedAt":"2026-03-20T15:00:00Z"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. already moderated", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/reviews/:reviewUid/moderate", env.handler.ModerateReview, withIdentity(librarian))

		env.review.EXPECT().
			ModerateReview(gomock.Any(), librarian, reviewUid, model.ReviewStatusRejected).
			Return(model.Review{}, errs.ErrAlreadyModerated)

		r := httptest.NewRequest(http.MethodPost, "/reviews/"+reviewUid+"/moderate", strings.NewReader(`{"decision":"REJECTED"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, `{"message":"review already moderated"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. bad decision", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/reviews/:reviewUid/moderate", env.handler.ModerateReview, withIdentity(librarian))

		r := httptest.NewRequest(http.MethodPost, "/reviews/"+reviewUid+"/moderate", strings.NewReader(`{"decision":"MAYBE"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_BulkApprove(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/reviews/moderate/bulk-approve", env.handler.BulkApprove, withIdentity(librarian))

		uids := []string{
			"9d2e65c4-40b4-45a9-b088-cbad28180ad2",
			"1b3563c1-5a88-4bbe-9a6a-24b4ff52c161",
		}
		env.review.EXPECT().
			BulkApprove(gomock.Any(), librarian, uids).
			Return(model.BulkApproveResponse{Approved: 1, Skipped: 1}, nil)

		body := `{"reviewUids":["9d2e65c4-40b4-45a9-b088-cbad28180ad2","1b3563c1-5a88-4bbe-9a6a-24b4ff52c161"]}`
		r := httptest.NewRequest(http.MethodPost, "/reviews/moderate/bulk-approve", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"approved":1,"skipped":1}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. empty batch", func(t *testing.T) {
		env := newTestEnv(t)
		env.echo.POST("/reviews/moderate/bulk-approve", env.handler.BulkApprove, withIdentity(librarian))

		r := httptest.NewRequest(http.MethodPost, "/reviews/moderate/bulk-approve", strings.NewReader(`{"reviewUids":[]}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.echo.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
