package entity

import (
	"fmt"
	"time"
)

// Difficulty — уровень сложности вопроса
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// RequiredOptionsCount — ровно столько вариантов ответа должно быть у вопроса
const RequiredOptionsCount = 4

// IsValid проверяет, что уровень сложности входит в допустимый набор
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question представляет вопрос викторины в рамках категории
type Question struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CategoryID uint       `gorm:"not null;index" json:"category_id"`
	Text       string     `gorm:"type:text;not null" json:"text"`
	Difficulty Difficulty `gorm:"size:10;not null;default:'easy'" json:"difficulty"`
	Options    []Option   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CorrectOption возвращает правильный вариант ответа.
// Второе значение false, если у вопроса нет варианта с IsCorrect = true.
func (q *Question) CorrectOption() (Option, bool) {
	for _, o := range q.Options {
		if o.IsCorrect {
			return o, true
		}
	}
	return Option{}, false
}

// ValidateOptions проверяет, что у вопроса ровно 4 варианта и ровно один из них правильный
func (q *Question) ValidateOptions() error {
	if len(q.Options) != RequiredOptionsCount {
		return fmt.Errorf("question must have exactly %d options, got %d", RequiredOptionsCount, len(q.Options))
	}
	correct := 0
	for _, o := range q.Options {
		if o.Text == "" {
			return fmt.Errorf("option text must not be empty")
		}
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("question must have exactly one correct option, got %d", correct)
	}
	return nil
}

// Option — вариант ответа на вопрос
type Option struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:255;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
}

// TableName определяет имя таблицы для GORM
func (Option) TableName() string {
	return "options"
}
