package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/errs"
	"github.com/edutech-lab/school-library-service/internal/model"
	"github.com/edutech-lab/school-library-service/pkg/auth"
	"github.com/edutech-lab/school-library-service/pkg/kafka"
)

func identity(c echo.Context) (auth.Identity, error) {
	ident, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return ident, nil
}

func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	showAll, _ := strconv.ParseBool(c.QueryParam("showAll"))

	books, err := h.circulationSvc.ListBooks(ctx, showAll, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	ctx := c.Request().Context()
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookUid")
	}
	book, err := h.circulationSvc.GetBook(ctx, bookUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueBookRequest
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
	rec, err := h.circulationSvc.IssueBook(ctx, ident, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrNoCopies):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	recordUid := c.Param("recordUid")
	if recordUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty recordUid")
	}
	ident, err := identity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rec, err := h.circulationSvc.ReturnBook(ctx, ident, recordUid)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyReturned):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// best effort: challenge progress catches up on the next returned book
	if err := h.enqueuer.Enqueue(kafka.BookReturnedTopic, model.BookReturnedEvent{
		RecordUid: rec.RecordUid,
		BookID:    rec.BookID,
		Username:  rec.Username,
	}); err != nil {
		h.log.Error("enqueue book-returned", zap.String("record", rec.RecordUid), zap.Error(err))
	}

	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) ListBorrowings(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	items, err := h.circulationSvc.ListBorrowings(ctx, ident.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListOverdue(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	if !ident.IsLibrarian() {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	}

	var asOf time.Time
	if raw := c.QueryParam("asOf"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		asOf = t
	}

	ctx := c.Request().Context()
	items, err := h.circulationSvc.ListOverdue(ctx, asOf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
