package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lex0104/Saphir/internal/config"
	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/httperr"
)

// baseURLFrom rebuilds the absolute origin of the request for confirmation
// links, falling back to the configured base URL.
func baseURLFrom(c *gin.Context, cfg *config.Config) string {
	if c == nil || c.Request == nil || c.Request.Host == "" {
		return cfg.BaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// writeDomainError maps domain errors onto the HTTP surface: conflicts are
// validation failures, denial is 403 and distinct from 404, and anonymous
// requesters get sent to login instead of a bare denial.
func writeDomainError(c *gin.Context, cfg *config.Config, err error) {
	if ce, ok := domain.AsConflict(err); ok {
		httperr.BadRequest(c, "slot_conflict", ce.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		c.Redirect(http.StatusFound, cfg.LoginURL)
		c.Abort()

	case errors.Is(err, domain.ErrPermissionDenied):
		httperr.Forbidden(c, "permission_denied", "You are not allowed to do that.")

	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "not_found", "Reservation or table not found.")

	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")

	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")

	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
