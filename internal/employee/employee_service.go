package employee

import (
	"context"
	"strings"
	"time"

	"github.com/FurowKick/phone-directory/internal/auth"
	autherrors "github.com/FurowKick/phone-directory/internal/auth/errors"
	"github.com/FurowKick/phone-directory/internal/domain"
	employeeerrors "github.com/FurowKick/phone-directory/internal/employee/errors"
	"github.com/FurowKick/phone-directory/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Search(ctx context.Context, query string) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateEmployeeRequest) error
	UpdateByID(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	users  auth.Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, users auth.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, users: users, logger: l}
}

// log resolves the request-scoped logger attached by the middleware,
// falling back to the service logger outside a request.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

// Search loads the full record set and filters in memory. The directory
// is assumed small; the multi-field substring semantics must survive any
// future move to an indexed query.
func (s *service) Search(ctx context.Context, query string) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return mapToListResponse(empls), nil
	}

	filtered := make([]Employee, 0, len(empls))
	for _, e := range empls {
		if matchesQuery(e, q) {
			filtered = append(filtered, e)
		}
	}
	return mapToListResponse(filtered), nil
}

// matchesQuery checks name, position and department case-insensitively.
// Phone fields are compared as-is against the lower-cased query, which
// is exact for digits and intentionally mirrors the historical behavior.
func matchesQuery(e Employee, loweredQuery string) bool {
	for _, field := range []string{e.FirstName, e.LastName, e.MiddleName, e.Position, e.Department} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	for _, phone := range []string{e.InternalPhone, e.CityPhone, e.MobilePhone} {
		if phone != "" && strings.Contains(phone, loweredQuery) {
			return true
		}
	}
	return false
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	withAccount := strings.TrimSpace(req.Login) != "" && strings.TrimSpace(req.Password) != ""

	empl := &Employee{
		ID:            uuid.New(),
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

	if !withAccount {
		if err := s.repo.Create(ctx, empl); err != nil {
			s.log(ctx).Error("create employee persist failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
		s.log(ctx).Info("create employee success", zap.String("employee_id", empl.ID.String()))
		return mapToResponse(*empl), nil
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Login)
	if err != nil {
		s.log(ctx).Error("create employee username lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		return EmployeeResponse{}, autherrors.ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	user := &auth.User{
		ID:           uuid.New(),
		Username:     req.Login,
		PasswordHash: string(hashed),
		Role:         domain.RoleSubscriber,
	}
	empl.UserID = &user.ID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return auth.MapUserError(err)
		}
		return s.repo.WithTx(tx).Create(ctx, empl)
	})
	if err != nil {
		s.log(ctx).Error("create employee with account failed",
			zap.String("login", req.Login),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.log(ctx).Info("create employee success",
		zap.String("employee_id", empl.ID.String()),
		zap.String("user_id", user.ID.String()),
	)
	return mapToResponse(*empl), nil
}

// Delete removes the card only. A linked credential record is left
// behind on purpose; its owner can still authenticate but has no card.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log(ctx).Error("delete employee failed", zap.String("employee_id", id.String()), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.log(ctx).Info("delete employee success", zap.String("employee_id", id.String()))
	return nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (EmployeeResponse, error) {
	empl, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if mapped := mapRepositoryError(err); mapped == employeeerrors.ErrEmployeeNotFound {
			return EmployeeResponse{}, employeeerrors.ErrProfileNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateEmployeeRequest) error {
	empl, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if mapped := mapRepositoryError(err); mapped == employeeerrors.ErrEmployeeNotFound {
			return employeeerrors.ErrProfileNotFound
		}
		return err
	}

	applyUpdate(empl, req)
	if err := s.repo.Update(ctx, empl); err != nil {
		s.log(ctx).Error("update profile persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.log(ctx).Info("update profile success", zap.String("employee_id", empl.ID.String()))
	return nil
}

func (s *service) UpdateByID(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) error {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	applyUpdate(empl, req)
	if err := s.repo.Update(ctx, empl); err != nil {
		s.log(ctx).Error("update employee persist failed",
			zap.String("employee_id", id.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.log(ctx).Info("update employee success", zap.String("employee_id", id.String()))
	return nil
}

// applyUpdate overwrites every mutable field, empty values included.
func applyUpdate(empl *Employee, req UpdateEmployeeRequest) {
	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.MiddleName = req.MiddleName
	empl.Position = req.Position
	empl.Department = req.Department
	empl.Building = req.Building
	empl.OfficeNumber = req.OfficeNumber
	empl.InternalPhone = req.InternalPhone
	empl.CityPhone = req.CityPhone
	empl.MobilePhone = req.MobilePhone
	empl.Email = req.Email
	empl.Address = req.Address
	empl.UpdatedAt = time.Now().UTC()
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            empl.ID.String(),
		FirstName:     empl.FirstName,
		LastName:      empl.LastName,
		MiddleName:    empl.MiddleName,
		Position:      empl.Position,
		Department:    empl.Department,
		Building:      empl.Building,
		OfficeNumber:  empl.OfficeNumber,
		InternalPhone: empl.InternalPhone,
		CityPhone:     empl.CityPhone,
		MobilePhone:   empl.MobilePhone,
		Email:         empl.Email,
		Address:       empl.Address,
		UpdatedAt:     empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if empl.UserID != nil {
		resp.UserID = empl.UserID.String()
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
