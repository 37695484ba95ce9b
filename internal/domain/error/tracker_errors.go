// Package error defines domain-specific errors for the personal dashboard.
package error

import "errors"

// Validation errors shared by the simpler trackers. These domains carry no
// coded error type; handlers map the sentinels directly to HTTP statuses.
var (
	// ErrInvalidTransactionType is returned when the type is neither
	// income nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidDateRange is returned when a date filter bound is not a
	// valid AAAA-MM-DD day.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidTransactionAmount is returned when the amount is negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must not be negative")

	// ErrInvalidDebtAmount is returned when the total amount is not positive.
	ErrInvalidDebtAmount = errors.New("debt total amount must be greater than zero")

	// ErrInvalidDebtStatus is returned when the status is outside the enum.
	ErrInvalidDebtStatus = errors.New("invalid debt status")

	// ErrInvalidIdeaCategory is returned when the category is outside the
	// fixed enum.
	ErrInvalidIdeaCategory = errors.New("invalid idea category")

	// ErrMissingIdeaFields is returned when title or description is empty.
	ErrMissingIdeaFields = errors.New("idea title and description are required")

	// ErrEventTextEmpty is returned when the agenda text to parse is blank.
	ErrEventTextEmpty = errors.New("event text is empty")

	// ErrProductNotFound is returned when a product reference does not
	// resolve at creation time.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductPrice is returned when the price is negative.
	ErrInvalidProductPrice = errors.New("product price must not be negative")

	// ErrInvalidSaleQuantity is returned when the quantity is not positive.
	ErrInvalidSaleQuantity = errors.New("sale quantity must be greater than zero")

	// ErrEmptyScript is returned when saving a blank sales script.
	ErrEmptyScript = errors.New("sales script is empty")

	// ErrNoMatchesSelected is returned when a batch analysis is requested
	// without any match.
	ErrNoMatchesSelected = errors.New("no matches selected for analysis")

	// ErrAnalysisBatchInProgress is returned when a batch analysis run is
	// already in flight.
	ErrAnalysisBatchInProgress = errors.New("analysis generation already in progress")
)
