package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"archbudget/internal/models"
	"archbudget/internal/utils"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 30 * 24 * time.Hour
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(user *models.User) error
	FindUserByID(id uuid.UUID) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	TouchLastLogin(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// SessionStore tracks issued refresh tokens and revocations (redis-backed).
type SessionStore interface {
	StoreSession(ctx context.Context, jti string, userID string) error
	DeleteSession(ctx context.Context, jti string) error
	Blacklist(ctx context.Context, jti string) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	userRepo UserStore
	sessions SessionStore
	log      *zap.Logger
}

func NewAuthService(userRepo UserStore, sessions SessionStore, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		log:      log,
	}
}

func (s *AuthService) Register(user *models.User) (string, string, error) {
	// 1. Check if user already exists
	existing, err := s.userRepo.FindUserByEmail(user.Email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "", ErrUserExists
	}

	// 2. Hash password before saving
	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = "" // Clear plain password

	// 3. Save user in DB
	if err := s.userRepo.Create(user); err != nil {
		return "", "", err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))

	// 4. Issue token pair
	return s.issueTokens(user.ID)
}

func (s *AuthService) Login(email, password string) (string, string, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		s.log.Warn("failed to update last login", zap.Error(err))
	}

	return s.issueTokens(user.ID)
}

// Refresh validates the refresh token from the cookie and rotates the pair:
// the presented token's jti is blacklisted so it can never be replayed.
func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	ctx := context.Background()
	blacklisted, err := s.sessions.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return "", "", err
	}
	if blacklisted {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.FindUserByID(claims.UserID)
	if err != nil || user == nil {
		return "", "", ErrInvalidToken
	}

	if err := s.sessions.Blacklist(ctx, claims.ID); err != nil {
		return "", "", err
	}
	if err := s.sessions.DeleteSession(ctx, claims.ID); err != nil {
		s.log.Warn("failed to delete rotated session", zap.Error(err))
	}

	return s.issueTokens(claims.UserID)
}

func (s *AuthService) Logout(refreshToken string) error {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return ErrInvalidToken
	}

	ctx := context.Background()
	if err := s.sessions.Blacklist(ctx, claims.ID); err != nil {
		return err
	}
	return s.sessions.DeleteSession(ctx, claims.ID)
}

func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) DeleteUser(id uuid.UUID) error {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	s.log.Info("deleting user account", zap.String("user_id", id.String()))
	return s.userRepo.Delete(id)
}

func (s *AuthService) issueTokens(userID uuid.UUID) (string, string, error) {
	accessToken, _, err := utils.GenerateJWT(userID, AccessTokenDuration, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, jti, err := utils.GenerateJWT(userID, RefreshTokenDuration, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	if err := s.sessions.StoreSession(context.Background(), jti, userID.String()); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
