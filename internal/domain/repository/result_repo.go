package repository

import (
	"context"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами
type ResultRepository interface {
	// Create сохраняет результат. Если категория уже удалена, возвращает ErrNotFound и ничего не пишет.
	Create(ctx context.Context, result *entity.Result) error
	// GetByID возвращает результат с подгруженными пользователем и категорией
	GetByID(ctx context.Context, id uint) (*entity.Result, error)
	// Leaderboard возвращает страницу результатов в порядке таблицы лидеров и общее их количество
	Leaderboard(ctx context.Context, limit, offset int) ([]entity.Result, int64, error)
	// ListRanked возвращает все результаты в порядке таблицы лидеров (для экспорта)
	ListRanked(ctx context.Context) ([]entity.Result, error)
	Delete(ctx context.Context, id uint) error
}
