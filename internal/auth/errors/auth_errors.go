package autherrors

import (
	"net/http"

	"github.com/FurowKick/phone-directory/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the response never reveals which one failed.
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrDuplicateUsername = apperror.New(
		apperror.CodeDuplicateUsername,
		"A user with this username already exists",
		http.StatusBadRequest,
	)
	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Username and password are required",
		http.StatusBadRequest,
	)
)
