package validators

import (
	"errors"
	"fmt"
)

// Kind groups validation failures the way the API reports them.
type Kind string

const (
	KindFormat     Kind = "format_error"
	KindRange      Kind = "range_error"
	KindTemporal   Kind = "temporal_error"
	KindEnum       Kind = "enum_error"
	KindUniqueness Kind = "uniqueness_conflict"
	KindStructural Kind = "structural_error"
)

// Code identifies the exact rule that rejected a value.
type Code string

const (
	CodeInvalidFormat         Code = "invalid_format"
	CodeChecksumMismatch      Code = "checksum_mismatch"
	CodeInvalidLength         Code = "invalid_length"
	CodeInvalidAreaCode       Code = "invalid_area_code"
	CodeInvalidMobilePrefix   Code = "invalid_mobile_prefix"
	CodeInvalidLandlinePrefix Code = "invalid_landline_prefix"

	CodePastValue       Code = "past_value"
	CodeFutureValue     Code = "future_value"
	CodeImplausibleAge  Code = "implausible_age"
	CodeBelowMinimum    Code = "below_minimum"
	CodeAboveMaximum    Code = "above_maximum"
	CodeTooManyDecimals Code = "too_many_decimals"
	CodeNegative        Code = "negative"
	CodeInvalidEnum     Code = "invalid_enum_value"
	CodeInvalidDayKey   Code = "invalid_day_key"
	CodeMissingField    Code = "missing_field"
	CodeInvalidType     Code = "invalid_type"
	CodeInvalidTime     Code = "invalid_time_format"
	CodeInvalidRange    Code = "invalid_range"
	CodeBreakOutOfRange Code = "break_out_of_bounds"

	CodeUniquenessConflict Code = "uniqueness_conflict"
	CodeInvalidReference   Code = "invalid_reference"
)

// Error is returned by every validator. Only the first violated rule is reported.
type Error struct {
	Kind    Kind
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func newError(kind Kind, code Code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// New builds an Error outside this package (repository conflicts, reference checks).
func New(kind Kind, code Code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// As extracts the validation error from err, if any.
func As(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// CodeOf returns the rule code carried by err, or "" when err is not a validation error.
func CodeOf(err error) Code {
	if ve, ok := As(err); ok {
		return ve.Code
	}
	return ""
}

// KindOf returns the kind carried by err, or "" when err is not a validation error.
func KindOf(err error) Kind {
	if ve, ok := As(err); ok {
		return ve.Kind
	}
	return ""
}

// Field tags a validation error with the field it was raised for.
// Non-validation errors and nil pass through untouched.
func Field(name string, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := As(err); ok {
		tagged := *ve
		if tagged.Field == "" {
			tagged.Field = name
		}
		return &tagged
	}
	return err
}

// First returns the first non-nil error, mirroring the fail-fast save path.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
