package services

import (
	"context"
	"errors"

	"github.com/drivelog/drivelog-api/internal/jwt"
	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
	"github.com/drivelog/drivelog-api/internal/password"
	"github.com/drivelog/drivelog-api/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, data models.UserCreate) (*models.UserDB, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TokenIssuer defines an interface for issuing and verifying tokens.
type TokenIssuer interface {
	GenerateAccess(ctx context.Context, user *models.UserDB) (string, error)
	GenerateRefresh(ctx context.Context, user *models.UserDB) (string, error)
	ParseRefresh(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration and the session lifecycle.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a hashed password.
func (svc *AuthService) Register(ctx context.Context, username, firstName string, lastName *string, email, rawPassword string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, models.UserCreate{
		Username:       username,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: hashed,
	})
	if err != nil {
		// The existence check above races with concurrent registrations,
		// the unique constraint is the authority.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns an access/refresh token pair.
// Unknown usernames and wrong passwords are indistinguishable for the
// caller; an inactive account with correct credentials is a separate
// forbidden outcome.
func (svc *AuthService) Login(ctx context.Context, username, rawPassword string) (accessToken, refreshToken string, err error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", "", ErrInvalidCredentials
	}

	if !password.Verify(rawPassword, user.HashedPassword) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", "", ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Errorw("inactive user tried to log in", "username", username)
		return "", "", ErrUserInactive
	}

	accessToken, err = svc.jwt.GenerateAccess(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}
	refreshToken, err = svc.jwt.GenerateRefresh(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated and stays usable until expiry.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := svc.jwt.ParseRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("refresh token for deleted user", "user_id", claims.UserID)
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Errorw("inactive user tried to refresh", "username", user.Username)
		return "", ErrUserInactive
	}

	return svc.jwt.GenerateAccess(ctx, user)
}

// CurrentUser returns the active user behind an already-verified
// access token.
func (svc *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}
