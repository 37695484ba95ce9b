// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// respondError maps domain errors to HTTP responses. Anything unrecognized
// is a 500.
func respondError(ctx *gin.Context, err error) {
	var oracleErr *domainerror.OracleError
	if errors.As(err, &oracleErr) {
		ctx.JSON(statusForOracleError(oracleErr.Code), dto.ErrorResponse{
			Error: oracleErr.Message,
			Code:  string(oracleErr.Code),
		})
		return
	}

	var betErr *domainerror.BetError
	if errors.As(err, &betErr) {
		ctx.JSON(statusForBetError(betErr.Code), dto.ErrorResponse{
			Error: betErr.Message,
			Code:  string(betErr.Code),
		})
		return
	}

	if status, ok := statusForSentinel(err); ok {
		ctx.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForOracleError maps oracle error codes to HTTP status codes.
// Transport failures are the upstream's fault; malformed and unresolved
// answers are unprocessable rather than server errors.
func statusForOracleError(code domainerror.OracleErrorCode) int {
	switch code {
	case domainerror.ErrCodeOracleUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeOracleTransport:
		return http.StatusBadGateway
	case domainerror.ErrCodeOracleMalformed, domainerror.ErrCodeOracleUnresolved:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// statusForBetError maps betting error codes to HTTP status codes.
func statusForBetError(code domainerror.BetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBetCheckInProgress,
		domainerror.ErrCodeBatchCheckInProgress,
		domainerror.ErrCodeNoPendingBets:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidStake,
		domainerror.ErrCodeInvalidOdds,
		domainerror.ErrCodeInvalidBetResult:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForSentinel maps the plain validation sentinels to status codes.
func statusForSentinel(err error) (int, bool) {
	switch {
	case errors.Is(err, domainerror.ErrProductNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domainerror.ErrAnalysisBatchInProgress):
		return http.StatusConflict, true
	case errors.Is(err, domainerror.ErrInvalidDateRange),
		errors.Is(err, domainerror.ErrInvalidTransactionType),
		errors.Is(err, domainerror.ErrInvalidTransactionAmount),
		errors.Is(err, domainerror.ErrInvalidDebtAmount),
		errors.Is(err, domainerror.ErrInvalidDebtStatus),
		errors.Is(err, domainerror.ErrInvalidIdeaCategory),
		errors.Is(err, domainerror.ErrMissingIdeaFields),
		errors.Is(err, domainerror.ErrEventTextEmpty),
		errors.Is(err, domainerror.ErrInvalidProductPrice),
		errors.Is(err, domainerror.ErrInvalidSaleQuantity),
		errors.Is(err, domainerror.ErrEmptyScript),
		errors.Is(err, domainerror.ErrNoMatchesSelected):
		return http.StatusBadRequest, true
	}
	return 0, false
}
