package auth

import (
	"context"
	"strings"
	"time"

	autherrors "github.com/FurowKick/phone-directory/internal/auth/errors"
	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/domain"
	"github.com/FurowKick/phone-directory/internal/shared/audit"
	"github.com/FurowKick/phone-directory/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) error
}

// ProfileCreator is the directory-side half of registration: it persists
// the employee card linked to the freshly created user, inside the same
// transaction. Implemented by the employee package.
type ProfileCreator interface {
	CreateForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req RegisterRequest) error
}

type service struct {
	db       *gorm.DB
	users    Repository
	profiles ProfileCreator
	jwtCfg   config.JWT
	audit    audit.Logger
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	users Repository,
	profiles ProfileCreator,
	jwtCfg config.JWT,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:       db,
		users:    users,
		profiles: profiles,
		jwtCfg:   jwtCfg,
		audit:    auditLogger,
		logger:   l,
	}
}

// log resolves the request-scoped logger attached by the middleware,
// falling back to the service logger outside a request.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.audit.Log(ctx, audit.Log{
			Action:  "LOGIN_FAILED",
			Message: "Unknown username",
			Meta:    map[string]any{"username": username},
		})
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.audit.Log(ctx, audit.Log{
			Action:  "LOGIN_FAILED",
			Message: "Password verification failed",
			Meta:    map[string]any{"username": username},
		})
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.log(ctx).Error("token generation failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.audit.Log(ctx, audit.Log{
		Action:  "LOGIN_SUCCESS",
		Message: "User authenticated",
		Meta:    map[string]any{"user_id": user.ID.String(), "role": user.Role.String()},
	})

	return LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return autherrors.ErrCredentialsRequired
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.log(ctx).Error("register username lookup failed", zap.Error(err))
		return err
	}
	if exists {
		return autherrors.ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hashed),
		Role:         domain.RoleSubscriber,
	}

	// User and employee card commit or roll back together. The unique
	// index on username closes the race left open by the exists check.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return MapUserError(err)
		}
		return s.profiles.CreateForUser(ctx, tx, user.ID, req)
	})
	if err != nil {
		s.log(ctx).Error("register transaction failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return err
	}

	s.audit.Log(ctx, audit.Log{
		Action:  "USER_REGISTERED",
		Message: "Subscriber account created",
		Meta:    map[string]any{"user_id": user.ID.String(), "username": user.Username},
	})
	s.log(ctx).Info("register success", zap.String("user_id", user.ID.String()))

	return nil
}

func (s *service) generateToken(user *User) (string, error) {
	now := time.Now()
	claims := domain.AccessClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwtCfg.ExpiryMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}
