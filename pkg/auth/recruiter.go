package auth

import (
	"net/http"
	"time"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// ============================================================================
// Recruiter Entity
// ============================================================================

// Recruiter is an account that can log in and own candidate records. The
// ExecutiveCode is the identity stamped onto candidates and audit entries.
type Recruiter struct {
	ID            kernel.RecruiterID `db:"id" json:"id"`
	ExecutiveCode string             `db:"executive_code" json:"executive_code"`
	Name          string             `db:"name" json:"name"`
	Email         string             `db:"email" json:"email"`
	PasswordHash  string             `db:"password_hash" json:"-"`
	Branch        string             `db:"branch" json:"branch"`
	Active        bool               `db:"active" json:"active"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updated_at"`
}

func (r *Recruiter) CanLogin() bool {
	return r.Active
}

// ============================================================================
// Service DTOs
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	Recruiter   Recruiter `json:"recruiter"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeRecruiterNotFound  = ErrRegistry.Register("RECRUITER_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Recruiter not found")
	CodeRecruiterInactive  = ErrRegistry.Register("RECRUITER_INACTIVE", errx.TypeAuthorization, http.StatusForbidden, "Recruiter account is inactive")
	CodeUnauthorized       = ErrRegistry.Register("UNAUTHORIZED", errx.TypeAuthentication, http.StatusUnauthorized, "Authentication required")
	CodeTokenGeneration    = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
	CodeTokenValidation    = ErrRegistry.Register("TOKEN_VALIDATION_FAILED", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
)

func ErrInvalidCredentials() *errx.Error { return ErrRegistry.New(CodeInvalidCredentials) }
func ErrRecruiterNotFound() *errx.Error  { return ErrRegistry.New(CodeRecruiterNotFound) }
func ErrRecruiterInactive() *errx.Error  { return ErrRegistry.New(CodeRecruiterInactive) }
func ErrUnauthorized() *errx.Error       { return ErrRegistry.New(CodeUnauthorized) }
func ErrTokenGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenGeneration)
}
func ErrTokenValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenValidation)
}
