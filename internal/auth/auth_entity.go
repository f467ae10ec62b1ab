package auth

import (
	"time"

	"github.com/FurowKick/phone-directory/internal/domain"

	"github.com/google/uuid"
)

// User is a credential record. Usernames are matched case-sensitively and
// kept unique by a database index; the uniqueness check in the service is
// only for a friendly error before the insert races.
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Username     string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Role         domain.Role `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time
}
