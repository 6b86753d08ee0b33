package service

import (
	"net/http"

	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// Auth failure taxonomy. ErrInvalidCredentials covers both unknown email and
// wrong password with a single message, and ErrInvalidToken/ErrUnknownSubject
// share their message text, so responses never reveal which check failed.
var (
	ErrEmailTaken         = apperrors.NewDomainError("EMAIL_ALREADY_REGISTERED", "email already registered", http.StatusBadRequest, nil)
	ErrInvalidCredentials = apperrors.NewDomainError("INVALID_CREDENTIALS", "incorrect email or password", http.StatusUnauthorized, nil)
	ErrInvalidToken       = apperrors.NewDomainError("UNAUTHORIZED", "could not validate credentials", http.StatusUnauthorized, nil)
	ErrUnknownSubject     = apperrors.NewDomainError("UNAUTHORIZED", "could not validate credentials", http.StatusUnauthorized, nil)
)
