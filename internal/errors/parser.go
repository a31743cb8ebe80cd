package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the classified form of a storage error.
type ErrorInfo struct {
	Kind    Kind
	Code    string
	Message string
}

// ParseError classifies a storage error into a client-safe code and message.
// context names the entity or operation ("review", "create restaurant") and
// narrows the message. Driver text never reaches the client.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Kind:    KindDatabase,
			Code:    InternalServerError,
			Message: "An internal error occurred",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Kind:    KindNotFound,
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// Unique constraint violation (postgres 23505, sqlite UNIQUE)
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower, context)
	}

	// Foreign key constraint violation (23503)
	if errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Kind:    KindConflict,
			Code:    ResourceConflict,
			Message: "The record is referenced by other data",
		}
	}

	// Check constraint violation (23514)
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || strings.Contains(errStrLower, "check constraint") {
		if strings.Contains(errStrLower, "rating") {
			return ErrorInfo{Kind: KindValidation, Code: ReviewInvalidRating, Message: "Rating must be between 1 and 5"}
		}
		return ErrorInfo{Kind: KindValidation, Code: ValidationInvalidInput, Message: "Invalid input"}
	}

	return ErrorInfo{
		Kind:    KindDatabase,
		Code:    InternalDatabaseError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower, context string) ErrorInfo {
	ctx := strings.ToLower(context)

	switch {
	case strings.Contains(ctx, "review") || strings.Contains(errLower, "idx_reviews_user_restaurant"):
		return ErrorInfo{Kind: KindConflict, Code: ReviewAlreadyExists, Message: "You have already submitted a review for this restaurant"}
	case strings.Contains(errLower, "email") || strings.Contains(ctx, "email"):
		return ErrorInfo{Kind: KindConflict, Code: AuthEmailAlreadyExists, Message: "Email already registered"}
	case strings.Contains(ctx, "restaurant") && (strings.Contains(errLower, "phone") || strings.Contains(ctx, "phone")):
		return ErrorInfo{Kind: KindConflict, Code: RestaurantPhoneExists, Message: "Phone number already in use by another restaurant"}
	case strings.Contains(errLower, "phone") || strings.Contains(ctx, "phone"):
		return ErrorInfo{Kind: KindConflict, Code: AuthPhoneAlreadyExists, Message: "Phone number already in use"}
	}

	return ErrorInfo{
		Kind:    KindConflict,
		Code:    ResourceAlreadyExists,
		Message: "Resource already exists",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "menu"):
		return "Menu item not found"
	case strings.Contains(contextLower, "restaurant"):
		return "Restaurant not found"
	case strings.Contains(contextLower, "order"):
		return "Order not found"
	case strings.Contains(contextLower, "review"):
		return "Review not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	}
	return "Requested resource not found"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "Failed to create resource"
	case strings.Contains(contextLower, "update"):
		return "Failed to update resource"
	case strings.Contains(contextLower, "delete"):
		return "Failed to delete resource"
	}
	return "A database error occurred"
}

// FromDB wraps a storage error as an *AppError. Typed errors pass through
// unchanged; the raw cause is kept for logging only.
func FromDB(err error, context string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	info := ParseError(err, context)
	return &AppError{
		Kind:    info.Kind,
		Code:    info.Code,
		Message: info.Message,
		Err:     err,
	}
}
