package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
)

// TokenIssuer is the iss claim of HealthTrack access tokens
const TokenIssuer = "HealthTrack"

// ErrNotJWT is returned by DecodeUnverified for tokens that are not JWTs
var ErrNotJWT = errors.New("token is not a JWT")

type accessClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

func (c *accessClaims) toDomain() *domain.TokenClaims {
	tc := &domain.TokenClaims{
		UserID:   c.UserID,
		Username: c.Username,
		Email:    c.Email,
		Issuer:   c.Issuer,
	}
	if c.ExpiresAt != nil {
		tc.Exp = c.ExpiresAt.Unix()
	}
	if c.IssuedAt != nil {
		tc.Iat = c.IssuedAt.Unix()
	}
	return tc
}

// JWTManager issues and validates access tokens
type JWTManager struct {
	secret            []byte
	accessTokenExpiry time.Duration
	now               func() time.Time
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, accessTokenExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:            []byte(secret),
		accessTokenExpiry: accessTokenExpiry,
		now:               time.Now,
	}
}

// GenerateAccessToken generates a new access token for the user
func (j *JWTManager) GenerateAccessToken(user *domain.User) (string, error) {
	now := j.now()
	claims := &accessClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTManager) ValidateToken(tokenString string) (*domain.TokenClaims, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("invalid userId in token")
	}

	return claims.toDomain(), nil
}

// GetAccessTokenExpiry returns the access token expiry duration in seconds
func (j *JWTManager) GetAccessTokenExpiry() int {
	return int(j.accessTokenExpiry.Seconds())
}

// DecodeUnverified reads the claims of a token without checking its signature.
// The smoke tester only uses this for diagnostics.
func DecodeUnverified(tokenString string) (*domain.TokenClaims, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}
	return claims.toDomain(), nil
}
