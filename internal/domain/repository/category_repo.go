package repository

import (
	"context"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete удаляет категорию вместе с её вопросами, вариантами и результатами
	Delete(ctx context.Context, id uint) error
	CountQuestions(ctx context.Context, id uint) (int64, error)
}
