package entity

import (
	"fmt"
	"time"
)

// Result представляет итог одной попытки прохождения викторины.
// Создаётся один раз на отправку ответов и далее не изменяется.
type Result struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	UserID           *uint         `gorm:"index" json:"user_id,omitempty"`
	User             *User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	GuestName        *string       `gorm:"size:100" json:"guest_name,omitempty"`
	CategoryID       uint          `gorm:"not null;index" json:"category_id"`
	Category         *Category     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Score            int           `gorm:"not null;default:0" json:"score"`
	CorrectAnswers   int           `gorm:"not null;default:0" json:"correct_answers"`
	IncorrectAnswers int           `gorm:"not null;default:0" json:"incorrect_answers"`
	TimeTaken        time.Duration `gorm:"not null;default:0" json:"time_taken"`
	CreatedAt        time.Time     `gorm:"not null;index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}

// DisplayName возвращает имя участника для отображения:
// гость — "<имя> (Guest)", зарегистрированный пользователь — его username, иначе "Anonymous".
func (r *Result) DisplayName() string {
	if r.GuestName != nil && *r.GuestName != "" {
		return *r.GuestName + " (Guest)"
	}
	if r.User != nil && r.User.Username != "" {
		return r.User.Username
	}
	return "Anonymous"
}

// FormattedTime возвращает время прохождения в формате MM:SS
func (r *Result) FormattedTime() string {
	return FormatDuration(r.TimeTaken)
}

// Percentage возвращает долю правильных ответов в процентах от total.
// При total == 0 возвращает 0.
func (r *Result) Percentage(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(total) * 100
}

// FormatDuration форматирует длительность как MM:SS (минуты не ограничены 59)
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
