package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
)

func (h *Handler) ListChallenges(c echo.Context) error {
	ctx := c.Request().Context()
	status := model.ChallengeStatus(c.QueryParam("status"))
	items, err := h.challengeSvc.ListChallenges(ctx, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateChallenge(c echo.Context) error {
	var req model.CreateChallengeRequest
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
	ch, err := h.challengeSvc.CreateChallenge(ctx, ident, req)
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, ch)
}

func (h *Handler) JoinChallenge(c echo.Context) error {
	challengeUid := c.Param("challengeUid")
	if challengeUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty challengeUid")
	}
	ident, err := identity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	p, err := h.challengeSvc.JoinChallenge(ctx, ident, challengeUid)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrChallengeNotActive):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, errs.ErrAlreadyJoined):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetParticipation(c echo.Context) error {
	participationUid := c.Param("participationUid")
	if participationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty participationUid")
	}
	ctx := c.Request().Context()
	p, err := h.challengeSvc.GetParticipation(ctx, participationUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AdvanceProgress(c echo.Context) error {
	participationUid := c.Param("participationUid")
	if participationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty participationUid")
	}
	var req model.AdvanceProgressRequest
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
	resp, err := h.challengeSvc.AdvanceProgress(ctx, ident, participationUid, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListBadges(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	items, err := h.challengeSvc.ListBadges(ctx, ident.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
