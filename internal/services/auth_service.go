package services

import (
	"errors"
	"time"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/redis"
	"erp_backoffice/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenStore is the subset of the Redis client the auth flow needs.
// Satisfied by *redis.Client.
type TokenStore interface {
	SetToken(token string, data *redis.SessionData, ttl time.Duration) error
	GetToken(token string) (*redis.SessionData, error)
	DeleteToken(token string) error
}

type AuthService interface {
	Login(email, password string) (string, *models.User, error)
	Authenticate(token string) (*redis.SessionData, error)
	Logout(token string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenStore, tokenTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, tokenTTL: tokenTTL}
}

// Login checks the credentials and issues an opaque bearer token backed by
// Redis. The token value carries no claims; everything lives server side.
func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// Accounts start disabled and stay locked out until an administrator
	// enables them.
	if !user.IsActive {
		return "", nil, ErrUserNotActivated
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:   user.ID,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
		IssuedAt: time.Now(),
	}
	if err := s.tokens.SetToken(token, session, s.tokenTTL); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) Authenticate(token string) (*redis.SessionData, error) {
	session, err := s.tokens.GetToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return session, nil
}

func (s *authService) Logout(token string) error {
	return s.tokens.DeleteToken(token)
}
