package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, budget.ErrUserKeyMissing) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errAmountMissing = errors.New("the amount of an expense must be set")
	errRangeInvalid  = errors.New("only one of the month and week query parameters can be set")
	errWeekInvalid   = errors.New("the week query parameter must be 'current'")
	errMonthInvalid  = errors.New("the month query parameter must be in YYYY-MM format")
)
