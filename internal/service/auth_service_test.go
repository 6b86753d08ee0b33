package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/trip-booking-service/internal/auth"
	"github.com/spec-kit/trip-booking-service/internal/config"
	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/events"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4, // keep the tests fast
		},
		Admin: config.AdminConfig{
			Email:    "admin@tripplanner.com",
			Name:     "Admin User",
			Password: "admin123",
		},
	}
}

func newAuthService(t *testing.T, users *fakeUserRepo) *AuthService {
	t.Helper()
	return NewAuthService(testAuthConfig(), users, nil, zap.NewNop())
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	user, token, exp, err := s.Register(ctx, "alice@example.com", "pw123", "Alice")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == "" || user.Email != "alice@example.com" || user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", user.Role)
	}
	if user.PasswordHash == "" || user.PasswordHash == "pw123" {
		t.Fatalf("password hash missing or plaintext")
	}
	if token == "" || !exp.After(user.CreatedAt) {
		t.Fatalf("bad token %q or expiry %v", token, exp)
	}

	resolved, err := s.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if resolved.ID != user.ID || resolved.Email != user.Email || resolved.Role != user.Role {
		t.Fatalf("resolved identity mismatch: %+v vs %+v", resolved, user)
	}
}

func TestRegister_PublishesUserRegistered(t *testing.T) {
	t.Parallel()

	dispatcher := &fakeDispatcher{}
	s := NewAuthService(testAuthConfig(), newFakeUserRepo(), dispatcher, zap.NewNop())
	ctx := context.Background()

	user, _, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	published := dispatcher.events()
	if len(published) != 1 || published[0].Type != events.EventUserRegistered {
		t.Fatalf("expected one user_registered event, got %+v", published)
	}
	payload, ok := published[0].Payload.(events.UserRegisteredPayload)
	if !ok || payload.UserID != user.ID || payload.Email != user.Email || payload.Name != user.Name {
		t.Fatalf("unexpected payload: %+v", published[0].Payload)
	}

	// a rejected registration publishes nothing
	if _, _, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if got := len(dispatcher.events()); got != 1 {
		t.Fatalf("expected 1 event after rejected registration, got %d", got)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	if _, _, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	// same email fails regardless of password and name
	if _, _, _, err := s.Register(ctx, "alice@example.com", "other-pw", "Someone Else"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	s := newAuthService(t, newFakeUserRepo())
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"malformed email", "not-an-email", "pw123"},
		{"email with display name", "Alice <alice@example.com>", "pw123"},
		{"empty password", "alice@example.com", ""},
	}
	for _, tc := range cases {
		_, _, _, err := s.Register(ctx, tc.email, tc.password, "Alice")
		if err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
			t.Fatalf("%s: expected validation failure, got %v", tc.name, err)
		}
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	if _, _, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, token, _, err := s.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.Email != "alice@example.com" || token == "" {
		t.Fatalf("unexpected login result: %+v token=%q", user, token)
	}

	// wrong password and unknown email fail with the same error
	_, _, _, wrongPwErr := s.Login(ctx, "alice@example.com", "wrongpw")
	if !errors.Is(wrongPwErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPwErr)
	}
	_, _, _, unknownErr := s.Login(ctx, "nobody@example.com", "pw123")
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if wrongPwErr.Error() != unknownErr.Error() {
		t.Fatalf("login failure messages differ: %q vs %q", wrongPwErr, unknownErr)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	if _, err := s.VerifyToken(ctx, "not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}

	// token signed with a different secret
	foreign, _, err := auth.NewTokenManager("other-secret", 0).Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := s.VerifyToken(ctx, foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerifyToken_UnknownSubject(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	user, token, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	users.remove(user.ID)

	verifyErr := func() error {
		_, err := s.VerifyToken(ctx, token)
		return err
	}()
	if !errors.Is(verifyErr, ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", verifyErr)
	}
	if verifyErr.Error() != ErrInvalidToken.Error() {
		t.Fatalf("unknown-subject message reveals the failed check: %q", verifyErr)
	}
}

func TestAuthFlow_Scenario(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	registered, token1, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if registered.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", registered.Role)
	}

	if _, _, _, err := s.Register(ctx, "alice@example.com", "pw123", "Alice"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if _, _, _, err := s.Login(ctx, "alice@example.com", "wrongpw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, token2, _, err := s.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token1 == token2 {
		t.Fatalf("expected a fresh token on login")
	}

	// both tokens stay valid and resolve to the same identity
	fromToken1, err := s.VerifyToken(ctx, token1)
	if err != nil {
		t.Fatalf("VerifyToken(token1) error: %v", err)
	}
	fromToken2, err := s.VerifyToken(ctx, token2)
	if err != nil {
		t.Fatalf("VerifyToken(token2) error: %v", err)
	}
	if fromToken1.ID != registered.ID || fromToken2.ID != registered.ID {
		t.Fatalf("token subjects diverge: %q %q want %q", fromToken1.ID, fromToken2.ID, registered.ID)
	}
}

func TestSeedAdmin(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	s := newAuthService(t, users)
	ctx := context.Background()

	if err := s.SeedAdmin(ctx); err != nil {
		t.Fatalf("SeedAdmin error: %v", err)
	}
	// idempotent
	if err := s.SeedAdmin(ctx); err != nil {
		t.Fatalf("second SeedAdmin error: %v", err)
	}

	admin, token, _, err := s.Login(ctx, "admin@tripplanner.com", "admin123")
	if err != nil {
		t.Fatalf("admin Login error: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", admin.Role)
	}

	resolved, err := s.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if _, err := auth.CheckRole(resolved, domain.RoleAdmin); err != nil {
		t.Fatalf("admin failed the admin role gate: %v", err)
	}

	user, _, _, err := s.Register(ctx, "bob@example.com", "pw123", "Bob")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := auth.CheckRole(user, domain.RoleAdmin); err == nil {
		t.Fatalf("fresh user passed the admin role gate")
	}
}
