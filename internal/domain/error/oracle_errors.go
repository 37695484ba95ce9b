// Package error defines domain-specific errors for the personal dashboard.
package error

import "errors"

// Oracle domain errors. The oracle boundary classifies every failure into
// one of these before any domain record is touched.
var (
	// ErrOracleUnavailable is returned when no API key is configured.
	ErrOracleUnavailable = errors.New("oracle service is not configured")

	// ErrOracleTransport is returned when the call to the service fails.
	ErrOracleTransport = errors.New("oracle call failed")

	// ErrOracleMalformedPayload is returned when the response cannot be
	// parsed or lacks a required field.
	ErrOracleMalformedPayload = errors.New("oracle response is malformed")

	// ErrOracleUnresolved is returned when a constrained classification
	// falls outside the allowed answer set.
	ErrOracleUnresolved = errors.New("oracle could not resolve a result")
)

// OracleErrorCode defines error codes for oracle errors.
// Format: ORC-XXYYYY where XX is category and YYYY is specific error.
type OracleErrorCode string

const (
	ErrCodeOracleUnavailable OracleErrorCode = "ORC-010001"
	ErrCodeOracleTransport   OracleErrorCode = "ORC-020001"
	ErrCodeOracleMalformed   OracleErrorCode = "ORC-030001"
	ErrCodeOracleUnresolved  OracleErrorCode = "ORC-030002"
)

// OracleError represents an oracle failure with code and message.
type OracleError struct {
	Code    OracleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OracleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OracleError) Unwrap() error {
	return e.Err
}

// NewOracleError creates a new OracleError with the given code and message.
func NewOracleError(code OracleErrorCode, message string, err error) *OracleError {
	return &OracleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
