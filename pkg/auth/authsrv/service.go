package authsrv

import (
	"context"

	"talentbridge/pkg/auth"
	"talentbridge/pkg/kernel"
	"talentbridge/pkg/logx"
)

// AuthService implements recruiter login and identity lookup.
type AuthService struct {
	recruiters  auth.RecruiterRepository
	passwordSvc auth.PasswordService
	tokenSvc    auth.TokenService
}

func NewAuthService(
	recruiters auth.RecruiterRepository,
	passwordSvc auth.PasswordService,
	tokenSvc auth.TokenService,
) *AuthService {
	return &AuthService{
		recruiters:  recruiters,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login verifies credentials and issues an access token carrying the
// recruiter's executive code.
func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	rec, err := s.recruiters.FindByEmail(ctx, req.Email)
	if err != nil {
		// Uniform response for unknown emails and bad passwords.
		return nil, auth.ErrInvalidCredentials()
	}

	if !s.passwordSvc.VerifyPassword(rec.PasswordHash, req.Password) {
		return nil, auth.ErrInvalidCredentials()
	}

	if !rec.CanLogin() {
		return nil, auth.ErrRecruiterInactive().WithDetail("executive_code", rec.ExecutiveCode)
	}

	token, err := s.tokenSvc.GenerateAccessToken(rec)
	if err != nil {
		return nil, err
	}

	logx.WithFields(logx.Fields{"executive_code": rec.ExecutiveCode}).Infof("recruiter logged in")

	return &auth.LoginResponse{
		AccessToken: token,
		Recruiter:   *rec,
	}, nil
}

// Me returns the account for an authenticated recruiter id.
func (s *AuthService) Me(ctx context.Context, id kernel.RecruiterID) (*auth.Recruiter, error) {
	return s.recruiters.FindByID(ctx, id)
}
