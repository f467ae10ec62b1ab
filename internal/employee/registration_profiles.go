package employee

import (
	"context"
	"time"

	"github.com/FurowKick/phone-directory/internal/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationProfiles implements auth.ProfileCreator: it writes the
// employee card for a self-registered user inside the registration
// transaction.
type RegistrationProfiles struct {
	repo Repository
}

func NewRegistrationProfiles(repo Repository) *RegistrationProfiles {
	return &RegistrationProfiles{repo: repo}
}

func (p *RegistrationProfiles) CreateForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req auth.RegisterRequest) error {
	empl := &Employee{
		ID:            uuid.New(),
		UserID:        &userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		Position:      req.Position,
		Department:    req.Department,
		Building:      req.Building,
		OfficeNumber:  req.OfficeNumber,
		InternalPhone: req.InternalPhone,
		CityPhone:     req.CityPhone,
		MobilePhone:   req.MobilePhone,
		Email:         req.Email,
		Address:       req.Address,
		UpdatedAt:     time.Now().UTC(),
	}
	return p.repo.WithTx(tx).Create(ctx, empl)
}
