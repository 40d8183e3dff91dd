package repository

import (
	"context"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами и их вариантами ответа
type QuestionRepository interface {
	// ListByCategory возвращает вопросы категории с вариантами, упорядоченные по ID
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	// Create сохраняет вопрос вместе с вариантами в одной транзакции
	Create(ctx context.Context, question *entity.Question) error
	// Update обновляет вопрос и полностью заменяет его варианты
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uint) error
}
