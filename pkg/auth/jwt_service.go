package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"talentbridge/pkg/config"
	"talentbridge/pkg/kernel"
)

// JWTService implements TokenService with HS256 JWTs.
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	issuer         string
}

func NewJWTServiceFromConfig(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
		issuer:         cfg.Issuer,
	}
}

type jwtClaims struct {
	RecruiterID   kernel.RecruiterID `json:"recruiter_id"`
	ExecutiveCode string             `json:"executive_code"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	jwt.RegisteredClaims
}

func (j *JWTService) GenerateAccessToken(r *Recruiter) (string, error) {
	now := time.Now()

	claims := jwtClaims{
		RecruiterID:   r.ID,
		ExecutiveCode: r.ExecutiveCode,
		Name:          r.Name,
		Email:         r.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   r.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTokenTTL)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", ErrTokenGenerationFailed().WithDetail("error", err.Error())
	}

	return tokenString, nil
}

func (j *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, ErrTokenValidationFailed().WithDetail("error", err.Error())
	}

	if !token.Valid {
		return nil, ErrTokenValidationFailed().WithDetail("error", "token is invalid")
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, ErrTokenValidationFailed().WithDetail("error", "invalid claims type")
	}

	return &TokenClaims{
		RecruiterID:   claims.RecruiterID,
		ExecutiveCode: claims.ExecutiveCode,
		Name:          claims.Name,
		Email:         claims.Email,
		IssuedAt:      claims.IssuedAt.Time,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

var _ TokenService = (*JWTService)(nil)
