package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/trip-booking-service/internal/auth"
	"github.com/spec-kit/trip-booking-service/internal/config"
	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/events"
	"github.com/spec-kit/trip-booking-service/internal/repository"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// AuthService owns credential verification, token issuance and verification.
// It is stateless between calls; the only persistent state lives in the user
// repository, and every token verification re-reads the identity.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	admin      config.AdminConfig
	logger     *zap.Logger
}

// NewAuthService builds the service from configuration.
func NewAuthService(cfg *config.Config, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		admin:      cfg.Admin,
		logger:     logger,
	}
}

// Register creates a new identity with role "user" and issues a session token.
//
// The email existence pre-check and the insert are two store operations; a
// concurrent registration with the same email can pass the pre-check, but the
// unique index on users.email then rejects the second insert, which is
// reported as the same email-taken failure.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, time.Time, error) {
	if err := validateEmail(email); err != nil {
		return nil, "", time.Time{}, err
	}
	if password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("password required", nil)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", time.Time{}, ErrEmailTaken
		}
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})

	token, exp, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login verifies credentials and issues a fresh session token. Unknown email
// and wrong password are deliberately indistinguishable; previously issued
// tokens stay valid.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// VerifyToken checks signature and expiry, then resolves the embedded subject
// against the store. A side-effect-free read: one lookup, no caching.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

// SeedAdmin creates the reserved administrator identity if it does not exist.
// This is the only path that produces a privileged account.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	if _, err := s.users.FindByEmail(ctx, s.admin.Email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(s.admin.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        s.admin.Email,
		Name:         s.admin.Name,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// another instance seeded it first
			return nil
		}
		return err
	}

	s.logger.Info("default admin user created", zap.String("email", admin.Email))
	return nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || strings.ContainsAny(email, " <>") {
		return apperrors.NewValidationError("invalid email address", nil)
	}
	return nil
}
