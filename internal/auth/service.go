package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mythrilmerch/mythrilmerch-backend/internal/users"
	pkgauth "github.com/mythrilmerch/mythrilmerch-backend/pkg/auth"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/security"
)

// Service handles shopper registration, login and token verification.
type Service interface {
	Register(ctx context.Context, email, name, password string) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	GetUser(ctx context.Context, userID int64) (*users.DTO, error)
	VerifyAccessToken(token string) (int64, error)
}

type service struct {
	db          *db.Client
	users       *users.Repository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// NewService constructs an auth service instance.
func NewService(dbClient *db.Client, userRepo *users.Repository, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig) (Service, error) {
	if dbClient == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if userRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "jwt secret required")
	}
	return &service{
		db:          dbClient,
		users:       userRepo,
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
		now:         time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, email, name, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	hash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *models.User
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.users.WithTx(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user email")
		}

		user, err := repo.Create(ctx, &models.User{
			Email:        email,
			Name:         name,
			PasswordHash: &hash,
		})
		if err != nil {
			// The unique index is the arbiter under concurrent signups.
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.sessionFor(created)
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	ctx, cancel := s.db.OpContext(ctx)
	defer cancel()

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
		}
		return nil, db.Translate(err, "user not found")
	}
	if user.PasswordHash == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	ok, err := security.VerifyPassword(password, *user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	return s.sessionFor(user)
}

func (s *service) GetUser(ctx context.Context, userID int64) (*users.DTO, error) {
	ctx, cancel := s.db.OpContext(ctx)
	defer cancel()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, db.Translate(err, "user not found")
	}
	return users.ToDTO(user), nil
}

func (s *service) VerifyAccessToken(token string) (int64, error) {
	claims, err := pkgauth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *service) sessionFor(user *models.User) (*Session, error) {
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), user.ID, user.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	return &Session{Token: token, User: users.ToDTO(user)}, nil
}
