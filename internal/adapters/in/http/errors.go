package http

import (
	"errors"
	"net/http"
	"strings"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/generated/servers"
	"tourdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ReasonMalformedInput tags 400 responses that carry no business reason.
const ReasonMalformedInput = "MalformedInput"

// StatusOf maps a use case error to its HTTP status.
func StatusOf(err error) int {
	if rejection, ok := tour.AsRejection(err); ok {
		switch {
		case rejection.Reason == tour.ReasonExternalLookupFailed:
			return http.StatusServiceUnavailable
		case rejection.Reason == tour.ReasonInvalidStatus:
			return http.StatusBadRequest
		case strings.HasPrefix(string(rejection.Reason), "Unknown"):
			return http.StatusNotFound
		default:
			return http.StatusConflict
		}
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body. Internal errors are logged and hidden.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusOf(err)
	body := servers.Error{Code: status, Message: err.Error()}

	if rejection, ok := tour.AsRejection(err); ok {
		body.Reason = lo.ToPtr(string(rejection.Reason))
		if len(rejection.OrderIDs) > 0 {
			body.Identifiers = lo.ToPtr(rejection.OrderIDs)
		}
		reason := attribute.String("reason", string(rejection.Reason))
		s.rejections.Add(ctx.Request().Context(), 1, metric.WithAttributes(reason, attribute.String("route", ctx.Path())))
		trace.SpanFromContext(ctx.Request().Context()).AddEvent("tour.rejected", trace.WithAttributes(reason))
	} else if status == http.StatusBadRequest {
		body.Reason = lo.ToPtr(ReasonMalformedInput)
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = http.StatusText(status)
	}

	return ctx.JSON(status, body)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
		Reason:  lo.ToPtr(ReasonMalformedInput),
	})
}

// ErrorHandler renders echo errors, such as parameter binding failures, in
// the API error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	body := servers.Error{Code: status, Message: message}
	if status == http.StatusBadRequest {
		body.Reason = lo.ToPtr(ReasonMalformedInput)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, body)
}
