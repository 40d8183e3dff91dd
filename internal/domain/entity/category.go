package entity

import "time"

// DefaultCategoryIcon используется, если иконка категории не задана
const DefaultCategoryIcon = "fas fa-question"

// Category представляет тематическую группу вопросов
type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	Icon        string     `gorm:"size:50;not null;default:'fas fa-question'" json:"icon"`
	Questions   []Question `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// IconOrDefault возвращает иконку категории или иконку по умолчанию
func (c *Category) IconOrDefault() string {
	if c.Icon == "" {
		return DefaultCategoryIcon
	}
	return c.Icon
}
