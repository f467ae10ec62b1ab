package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicateUsername = "DUPLICATE_USERNAME"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeRateLimited       = "RATE_LIMITED"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
