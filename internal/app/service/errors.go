package service

import (
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
)

// Sentinels compare by code, so errors.Is(err, ErrOrderNotFound) holds for
// any specialised copy (Withf, WithDetails, Wrap).
var (
	// Identity & access
	ErrInvalidCredentials = apperrors.New(apperrors.KindAuthentication, apperrors.AuthInvalidCredentials, "Incorrect email or password")
	ErrInvalidToken       = apperrors.New(apperrors.KindAuthentication, apperrors.AuthTokenInvalid, "Could not validate credentials")
	ErrExpiredToken       = apperrors.New(apperrors.KindAuthentication, apperrors.AuthTokenExpired, "Token has expired")
	ErrRevokedToken       = apperrors.New(apperrors.KindAuthentication, apperrors.AuthTokenRevoked, "Token has been revoked")
	ErrTokenUserNotFound  = apperrors.New(apperrors.KindAuthentication, apperrors.AuthUserNotFound, "User for this token no longer exists")
	ErrInactiveUser       = apperrors.New(apperrors.KindAuthentication, apperrors.AuthUserInactive, "Inactive user")
	ErrAdminRequired      = apperrors.New(apperrors.KindAuthorization, apperrors.AuthzAdminOnly, "Administrator privileges required")
	ErrEmailAlreadyExists = apperrors.New(apperrors.KindConflict, apperrors.AuthEmailAlreadyExists, "Email already registered")
	ErrPhoneAlreadyExists = apperrors.New(apperrors.KindConflict, apperrors.AuthPhoneAlreadyExists, "Phone number already in use")
	ErrUserNotFound       = apperrors.New(apperrors.KindNotFound, apperrors.UserNotFound, "User not found")

	// Catalog
	ErrRestaurantNotFound    = apperrors.New(apperrors.KindNotFound, apperrors.RestaurantNotFound, "Restaurant not found")
	ErrRestaurantPhoneExists = apperrors.New(apperrors.KindConflict, apperrors.RestaurantPhoneExists, "Phone number already in use by another restaurant")
	ErrMenuItemNotFound      = apperrors.New(apperrors.KindNotFound, apperrors.MenuItemNotFound, "Menu item not found")

	// Orders
	ErrOrderNotFound       = apperrors.New(apperrors.KindNotFound, apperrors.OrderNotFound, "Order not found")
	ErrOrderAccessDenied   = apperrors.New(apperrors.KindAuthorization, apperrors.OrderAccessDenied, "Access denied for order")
	ErrOrderNotCancellable = apperrors.New(apperrors.KindOrderNotCancellable, apperrors.OrderNotCancellable, "Order cannot be cancelled")
	ErrEmptyCart           = apperrors.New(apperrors.KindEmptyCart, apperrors.OrderEmptyCart, "Cannot place order with empty cart")

	// Reviews
	ErrReviewNotFound      = apperrors.New(apperrors.KindNotFound, apperrors.ReviewNotFound, "Review not found")
	ErrReviewAlreadyExists = apperrors.New(apperrors.KindConflict, apperrors.ReviewAlreadyExists, "You have already submitted a review for this restaurant")
	ErrReviewNotAllowed    = apperrors.New(apperrors.KindAuthorization, apperrors.ReviewNotAllowed, "You can only review a restaurant after a delivered order")
	ErrReviewAccessDenied  = apperrors.New(apperrors.KindAuthorization, apperrors.ReviewAccessDenied, "Access denied for review")

	// Uploads
	ErrInvalidFileType   = apperrors.New(apperrors.KindValidation, apperrors.UploadInvalidFileType, "Only image uploads are allowed")
	ErrInvalidFolder     = apperrors.New(apperrors.KindValidation, apperrors.UploadInvalidFolder, "Invalid upload folder")
	ErrUploadUnavailable = apperrors.New(apperrors.KindInternal, apperrors.UploadUnavailable, "File uploads are not configured")
	ErrPresignFailed     = apperrors.New(apperrors.KindInternal, apperrors.UploadFailed, "Failed to create upload URL")
)

// validationError is a ValidationError carrying a specific code and field.
func validationError(code, field, message string) *apperrors.AppError {
	return apperrors.New(apperrors.KindValidation, code, message).
		WithDetails(map[string]interface{}{"field": field})
}
