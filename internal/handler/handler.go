package handler

import (
	"net/http"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/pkg/validate"
)

type Handler struct {
	circulationSvc CirculationService
	challengeSvc   ChallengeService
	reviewSvc      ReviewService
	enqueuer       Enqueuer
	log            *zap.Logger
}

func New(circulationSvc CirculationService, challengeSvc ChallengeService, reviewSvc ReviewService, producer sarama.SyncProducer, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		challengeSvc:   challengeSvc,
		reviewSvc:      reviewSvc,
		enqueuer:       NewEnqueuer(producer),
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		jwtAuthentication,
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.GET("/books/:bookUid/reviews", h.ListReviews)
	api.POST("/books/:bookUid/reviews", h.CreateReview)

	api.POST("/borrowings", h.IssueBook)
	api.GET("/borrowings", h.ListBorrowings)
	api.GET("/borrowings/overdue", h.ListOverdue)
	api.POST("/borrowings/:recordUid/return", h.ReturnBook)

	api.GET("/challenges", h.ListChallenges)
	api.POST("/challenges", h.CreateChallenge)
	api.POST("/challenges/:challengeUid/join", h.JoinChallenge)
	api.GET("/participations/:participationUid", h.GetParticipation)
	api.POST("/participations/:participationUid/progress", h.AdvanceProgress)
	api.GET("/badges", h.ListBadges)

	api.POST("/reviews/:reviewUid/moderate", h.ModerateReview)
	api.POST("/reviews/moderate/bulk-approve", h.BulkApprove)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
