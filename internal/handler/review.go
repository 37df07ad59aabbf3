package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

func (h *Handler) CreateReview(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookUid")
	}
	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ident, err := identity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rev, err := h.reviewSvc.CreateReview(ctx, ident, bookUid, req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, rev)
}

func (h *Handler) ModerateReview(c echo.Context) error {
	reviewUid := c.Param("reviewUid")
	if reviewUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty reviewUid")
	}
	var req model.ModerateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ident, err := identity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rev, err := h.reviewSvc.ModerateReview(ctx, ident, reviewUid, req.Decision)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyModerated):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rev)
}

func (h *Handler) BulkApprove(c echo.Context) error {
	var req model.BulkApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ident, err := identity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	resp, err := h.reviewSvc.BulkApprove(ctx, ident, req.ReviewUids)
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListReviews(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookUid")
	}
	ctx := c.Request().Context()
	status := model.ReviewStatus(c.QueryParam("status"))
	items, err := h.reviewSvc.ListReviews(ctx, bookUid, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
