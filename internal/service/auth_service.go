package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/repository"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
	"github.com/Hanikakadiya/Master-Quiz/pkg/auth"
)

// AuthResult — пользователь и выданный ему токен доступа
type AuthResult struct {
	User        *entity.User
	AccessToken string
}

// AuthService предоставляет регистрацию и вход пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

// Register создает пользователя с ролью role и сразу выдаёт токен
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return nil, validationErr("username must be 3-50 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationErr("invalid email")
	}
	if len(password) < 6 {
		return nil, validationErr("password must be at least 6 characters")
	}
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, validationErr("unknown role %q", role)
	}

	user := &entity.User{Username: username, Email: email, Password: password, Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("[AuthService] Зарегистрирован пользователь ID=%d, role=%s", user.ID, user.Role)

	return s.issue(user)
}

// Login проверяет email и пароль и выдаёт токен
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		log.Printf("[AuthService] Неудачная попытка входа для пользователя ID=%d", user.ID)
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, apperrors.ErrUnauthorized)
	}
	return s.issue(user)
}

// GetUserByID возвращает пользователя по ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) issue(user *entity.User) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
