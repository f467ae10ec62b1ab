package employeeerrors

import (
	"net/http"

	"github.com/FurowKick/phone-directory/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Your directory card was not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrIdentityUnresolved = apperror.New(
		apperror.CodeInvalidInput,
		"Could not determine the calling user",
		http.StatusBadRequest,
	)
)
