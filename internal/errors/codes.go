package errors

// Error codes returned to clients in the "error" field.
// Format: CATEGORY_SPECIFIC_DETAIL. Clients branch on these, never on the message.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthUserNotFound       = "AUTH_USER_NOT_FOUND" // token refers to a deleted user
	AuthUserInactive       = "AUTH_USER_INACTIVE"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthPhoneAlreadyExists = "AUTH_PHONE_EXISTS"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Users (USER_) ====================
	UserNotFound = "USER_NOT_FOUND"

	// ==================== Restaurants (RESTAURANT_) ====================
	RestaurantNotFound    = "RESTAURANT_NOT_FOUND"
	RestaurantPhoneExists = "RESTAURANT_PHONE_EXISTS"
	MenuItemNotFound      = "MENU_ITEM_NOT_FOUND"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound         = "ORDER_NOT_FOUND"
	OrderAccessDenied     = "ORDER_ACCESS_DENIED"
	OrderNotCancellable   = "ORDER_NOT_CANCELLABLE"
	OrderEmptyCart        = "ORDER_EMPTY_CART"
	OrderInvalidStatus    = "ORDER_INVALID_STATUS"
	OrderInvalidMenuItem  = "ORDER_INVALID_MENU_ITEM"
	OrderMenuItemInactive = "ORDER_MENU_ITEM_UNAVAILABLE"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"
	ReviewAlreadyExists = "REVIEW_ALREADY_EXISTS"
	ReviewNotAllowed    = "REVIEW_NOT_ALLOWED"
	ReviewAccessDenied  = "REVIEW_ACCESS_DENIED"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadInvalidFolder   = "UPLOAD_INVALID_FOLDER"
	UploadUnavailable     = "UPLOAD_UNAVAILABLE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
