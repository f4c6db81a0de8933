package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"colis_express/internal/models"
	"colis_express/internal/redis"
	"colis_express/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// SessionStore is the slice of the Redis client used for auth sessions.
type SessionStore interface {
	SetSession(token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(token string) (*redis.SessionData, error)
	DeleteSession(token string) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (string, *models.User, error)
	Logout(token string) error
	SessionFromToken(token string) (*redis.SessionData, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Register(input RegisterInput) (*models.User, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Phone:        input.Phone,
	}
	if err := s.userRepo.Create(user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	return token, user, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) SessionFromToken(token string) (*redis.SessionData, error) {
	session, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
