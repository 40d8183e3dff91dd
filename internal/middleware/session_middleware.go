package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextSessionID — ключ контекста с идентификатором сессии
const ContextSessionID = "session_id"

// SessionConfig содержит параметры cookie сессии
type SessionConfig struct {
	CookieName string
	Secure     bool
	// MaxAge в секундах; 0 — cookie на время работы браузера
	MaxAge int
}

// Session выдаёт анонимный идентификатор сессии в cookie и кладёт его в контекст.
// Невалидное значение cookie заменяется новым.
func Session(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, sessionID, cfg.MaxAge, "/", "", cfg.Secure, true)
		}
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// SessionIDFromContext возвращает идентификатор сессии текущего запроса
func SessionIDFromContext(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
