package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
)

// leaderboardOrder — порядок таблицы лидеров: больше очков, затем быстрее, затем новее.
// id DESC делает порядок полным при совпадении created_at.
const leaderboardOrder = "score DESC, time_taken ASC, created_at DESC, id DESC"

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет результат. Проверка существования категории и вставка выполняются в одной транзакции.
func (r *ResultRepo) Create(ctx context.Context, result *entity.Result) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Category{}).Where("id = ?", result.CategoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("category %d: %w", result.CategoryID, apperrors.ErrNotFound)
		}
		return tx.Omit(clause.Associations).Create(result).Error
	})
	if isForeignKeyViolation(err) {
		return fmt.Errorf("category %d or user vanished: %w", result.CategoryID, apperrors.ErrNotFound)
	}
	return err
}

// GetByID возвращает результат с пользователем и категорией
func (r *ResultRepo) GetByID(ctx context.Context, id uint) (*entity.Result, error) {
	var result entity.Result
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Leaderboard возвращает страницу результатов и общее количество.
// Подсчёт и выборка выполняются в одной транзакции для согласованности.
func (r *ResultRepo) Leaderboard(ctx context.Context, limit, offset int) ([]entity.Result, int64, error) {
	var results []entity.Result
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Result{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Preload("User").
			Preload("Category").
			Order(leaderboardOrder).
			Limit(limit).
			Offset(offset).
			Find(&results).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListRanked возвращает все результаты в порядке таблицы лидеров
func (r *ResultRepo) ListRanked(ctx context.Context) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Order(leaderboardOrder).
		Find(&results).Error
	return results, err
}

// Delete удаляет результат по ID
func (r *ResultRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Result{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
