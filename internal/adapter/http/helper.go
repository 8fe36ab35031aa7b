package http

import (
	"errors"
	"net/http"

	"fundcircle-backend/internal/domain/deposit"
	"fundcircle-backend/internal/domain/loan"
	"fundcircle-backend/internal/domain/loanrequest"
	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/internal/usecase/auth"
)

// statusFor maps domain errors to HTTP status codes: validation failures are
// unprocessable, state conflicts conflict, unknown ids are not found, and
// anything else is a server-side persistence failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrInvalidAmount),
		errors.Is(err, loan.ErrInvalidTerm),
		errors.Is(err, loanrequest.ErrInvalidAmount),
		errors.Is(err, loanrequest.ErrInvalidTerm),
		errors.Is(err, deposit.ErrInvalidAmount),
		errors.Is(err, user.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, loanrequest.ErrAlreadyFinalized),
		errors.Is(err, loan.ErrInstallmentAlreadyPaid),
		errors.Is(err, user.ErrAlreadyReviewed),
		errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrInstallmentNotFound),
		errors.Is(err, loanrequest.ErrNotFound),
		errors.Is(err, deposit.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrPendingApproval),
		errors.Is(err, auth.ErrAccessDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
