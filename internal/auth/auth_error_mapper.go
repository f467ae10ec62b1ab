package auth

import (
	"errors"
	"strings"

	autherrors "github.com/FurowKick/phone-directory/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapUserError translates store-level failures on the users table into
// the auth error taxonomy. Exported because the directory service also
// provisions credential records.
func MapUserError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrInvalidCredentials
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return autherrors.ErrDuplicateUsername
		}
	}

	// SQLite reports unique violations as plain text.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed: users.username") {
		return autherrors.ErrDuplicateUsername
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "username") {
		return autherrors.ErrDuplicateUsername
	}

	return err
}
