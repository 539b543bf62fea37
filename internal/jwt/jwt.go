package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
)

// Token type values embedded in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "refresh_token"

// Error variables
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the signed payload of both token kinds.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWT issues and verifies RS256-signed access and refresh tokens.
// The private key signs; resource servers only need the public key.
type JWT struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Option configures a JWT instance.
type Option func(*JWT) error

// WithPrivateKeyPEM sets the RSA private key from PEM bytes.
func WithPrivateKeyPEM(pemBytes []byte) Option {
	return func(j *JWT) error {
		key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
		if err != nil {
			return err
		}
		j.privateKey = key
		return nil
	}
}

// WithPublicKeyPEM sets the RSA public key from PEM bytes.
func WithPublicKeyPEM(pemBytes []byte) Option {
	return func(j *JWT) error {
		key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
		if err != nil {
			return err
		}
		j.publicKey = key
		return nil
	}
}

// WithKeys sets already-parsed RSA keys.
func WithKeys(private *rsa.PrivateKey, public *rsa.PublicKey) Option {
	return func(j *JWT) error {
		j.privateKey = private
		j.publicKey = public
		return nil
	}
}

// WithAccessTTL sets the access token lifetime.
func WithAccessTTL(ttl time.Duration) Option {
	return func(j *JWT) error {
		j.accessTTL = ttl
		return nil
	}
}

// WithRefreshTTL sets the refresh token lifetime.
func WithRefreshTTL(ttl time.Duration) Option {
	return func(j *JWT) error {
		j.refreshTTL = ttl
		return nil
	}
}

// New creates a JWT instance with 15 minute access and 30 day refresh
// defaults.
func New(opts ...Option) (*JWT, error) {
	j := &JWT{
		accessTTL:  15 * time.Minute,
		refreshTTL: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// GenerateAccess creates a short-lived access token for the user.
func (j *JWT) GenerateAccess(ctx context.Context, user *models.UserDB) (string, error) {
	return j.generate(user, TokenTypeAccess, j.accessTTL)
}

// GenerateRefresh creates a long-lived refresh token for the user.
func (j *JWT) GenerateRefresh(ctx context.Context, user *models.UserDB) (string, error) {
	return j.generate(user, TokenTypeRefresh, j.refreshTTL)
}

func (j *JWT) generate(user *models.UserDB, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if tokenType == TokenTypeAccess {
		claims.Email = user.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}

// ParseAccess verifies an access token and returns its claims.
func (j *JWT) ParseAccess(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString, TokenTypeAccess)
}

// ParseRefresh verifies a refresh token and returns its claims.
// Presenting an access token here fails the same way as an invalid
// token: type confusion is rejected, not silently accepted.
func (j *JWT) ParseRefresh(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString, TokenTypeRefresh)
}

func (j *JWT) parse(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.publicKey, nil
	})
	if err != nil {
		// Expired and malformed tokens are logged with the real cause
		// but normalized for the caller.
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Log.Infow("token signature has expired, needs refreshing", "err", err)
			return nil, ErrTokenExpired
		}
		logger.Log.Infow("token parse error", "err", err)
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.TokenType != wantType {
		logger.Log.Infow("token type mismatch", "want", wantType, "got", claims.TokenType)
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization
// header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// GetRefreshTokenFromCookie extracts the refresh token from its cookie.
func (j *JWT) GetRefreshTokenFromCookie(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil {
		return "", errors.New("refresh token cookie missing")
	}
	return cookie.Value, nil
}
