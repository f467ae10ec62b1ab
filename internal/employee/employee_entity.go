package employee

import (
	"time"

	"github.com/FurowKick/phone-directory/internal/auth"

	"github.com/google/uuid"
)

// Employee is a directory card. UserID is set when the card has a login;
// directory-only entries keep it nil. Deleting the linked user clears the
// reference instead of cascading (ON DELETE SET NULL).
type Employee struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	User   *auth.User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`

	FirstName     string `gorm:"type:varchar(255);not null"`
	LastName      string `gorm:"type:varchar(255);not null"`
	MiddleName    string
	Position      string
	Department    string
	Building      string
	OfficeNumber  string
	InternalPhone string
	CityPhone     string
	MobilePhone   string
	Email         string
	Address       string

	UpdatedAt time.Time
}
