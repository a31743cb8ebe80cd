package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string                 `json:"error"` // error code (codes.go)
	Kind      Kind                   `json:"kind,omitempty"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

var statusByKind = map[Kind]int{
	KindAuthentication:      http.StatusUnauthorized,
	KindAuthorization:       http.StatusForbidden,
	KindNotFound:            http.StatusNotFound,
	KindConflict:            http.StatusConflict,
	KindValidation:          http.StatusBadRequest,
	KindEmptyCart:           http.StatusBadRequest,
	KindOrderNotCancellable: http.StatusBadRequest,
	KindDatabase:            http.StatusInternalServerError,
	KindInternal:            http.StatusInternalServerError,
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Respond writes err as an ErrorResponse. Untyped errors are reported as an
// internal database error without leaking their text.
func Respond(c *gin.Context, err error) {
	appErr, ok := As(err)
	if !ok {
		appErr = New(KindDatabase, InternalServerError, "An internal error occurred")
	}
	c.JSON(StatusOf(appErr), ErrorResponse{
		Error:     appErr.Code,
		Kind:      appErr.Kind,
		Message:   appErr.Message,
		Details:   appErr.Details,
		RequestID: c.GetString("request_id"),
	})
}

// RespondWithError writes an error response with an explicit status and code.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		RequestID: c.GetString("request_id"),
	})
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	Respond(c, New(KindAuthentication, AuthUnauthorized, message))
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	Respond(c, New(KindAuthorization, AuthzForbidden, message))
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	Respond(c, New(KindValidation, errorCode, message))
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "An internal error occurred"
	}
	Respond(c, New(KindDatabase, InternalServerError, message))
}

// RespondWithValidationError reports request binding failures.
func RespondWithValidationError(c *gin.Context, err error) {
	Respond(c, &AppError{
		Kind:    KindValidation,
		Code:    ValidationInvalidInput,
		Message: "Invalid request body",
		Details: map[string]interface{}{"reason": err.Error()},
	})
}
