package auth

import (
	"context"
	"time"

	"talentbridge/pkg/kernel"
)

// RecruiterRepository is the persistence contract for recruiter accounts.
type RecruiterRepository interface {
	FindByID(ctx context.Context, id kernel.RecruiterID) (*Recruiter, error)
	FindByEmail(ctx context.Context, email string) (*Recruiter, error)
	FindByExecutiveCode(ctx context.Context, code string) (*Recruiter, error)
	Save(ctx context.Context, r Recruiter) error
}

// PasswordService hashes and verifies account passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) bool
}

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	RecruiterID   kernel.RecruiterID
	ExecutiveCode string
	Name          string
	Email         string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(r *Recruiter) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}
