// Package error defines domain-specific errors for the personal dashboard.
package error

import "errors"

// Betting domain errors.
var (
	// ErrBetNotFound is returned when a bet is not found in the collection.
	ErrBetNotFound = errors.New("bet not found")

	// ErrBetCheckInProgress is returned when a settlement check is already
	// running for the same bet.
	ErrBetCheckInProgress = errors.New("bet check already in progress")

	// ErrBatchCheckInProgress is returned when a settle-all run is already
	// in flight.
	ErrBatchCheckInProgress = errors.New("batch bet check already in progress")

	// ErrNoPendingBets is returned when settle-all finds nothing to check.
	ErrNoPendingBets = errors.New("no pending bets to check")

	// ErrInvalidStake is returned when the stake is not positive.
	ErrInvalidStake = errors.New("stake must be greater than zero")

	// ErrInvalidOdds is returned when the odds are below 1.
	ErrInvalidOdds = errors.New("odds must be at least 1")

	// ErrInvalidBetResult is returned when the result is outside the enum.
	ErrInvalidBetResult = errors.New("invalid bet result")
)

// BetErrorCode defines error codes for betting errors.
// Format: BET-XXYYYY where XX is category and YYYY is specific error.
type BetErrorCode string

const (
	ErrCodeBetNotFound          BetErrorCode = "BET-010001"
	ErrCodeInvalidStake         BetErrorCode = "BET-010002"
	ErrCodeInvalidOdds          BetErrorCode = "BET-010003"
	ErrCodeInvalidBetResult     BetErrorCode = "BET-010004"
	ErrCodeBetCheckInProgress   BetErrorCode = "BET-020001"
	ErrCodeBatchCheckInProgress BetErrorCode = "BET-020002"
	ErrCodeNoPendingBets        BetErrorCode = "BET-020003"
)

// BetError represents a betting error with code and message.
type BetError struct {
	Code    BetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BetError) Unwrap() error {
	return e.Err
}

// NewBetError creates a new BetError with the given code and message.
func NewBetError(code BetErrorCode, message string, err error) *BetError {
	return &BetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
