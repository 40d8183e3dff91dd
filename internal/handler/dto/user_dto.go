package dto

import (
	"time"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// UserResponse представляет пользователя без чувствительных полей
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse — ответ на регистрацию и вход
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
}

// NewUserResponse создает DTO пользователя
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// NewAuthResponse создает DTO ответа аутентификации
func NewAuthResponse(res *service.AuthResult, expiresIn time.Duration) AuthResponse {
	return AuthResponse{
		User:        NewUserResponse(res.User),
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(expiresIn.Seconds()),
	}
}
