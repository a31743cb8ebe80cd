package errors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories. Transport maps each Kind to
// exactly one HTTP status (see statusByKind).
type Kind string

const (
	KindAuthentication      Kind = "AuthenticationError"
	KindAuthorization       Kind = "AuthorizationError"
	KindNotFound            Kind = "NotFound"
	KindConflict            Kind = "Conflict"
	KindValidation          Kind = "ValidationError"
	KindEmptyCart           Kind = "EmptyCart"
	KindOrderNotCancellable Kind = "OrderNotCancellable"
	KindDatabase            Kind = "DatabaseError"
	KindInternal            Kind = "InternalError"
)

// AppError is a typed domain failure. Two AppErrors are considered the same
// error when their codes match, so a sentinel stays comparable with errors.Is
// after its message or details have been specialised.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Withf returns a copy carrying a formatted message.
func (e *AppError) Withf(format string, args ...interface{}) *AppError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// WithDetails returns a copy carrying structured details.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap returns a copy that keeps err as its cause.
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// Validation builds a ValidationError pointing at a single input field.
func Validation(field, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    ValidationInvalidInput,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// As extracts the first *AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the Kind of err, treating untyped errors as DatabaseError.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindDatabase
}
