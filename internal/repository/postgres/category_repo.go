package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List возвращает все категории, упорядоченные по имени
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create создает новую категорию
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.Icon == "" {
		category.Icon = entity.DefaultCategoryIcon
	}
	err := r.db.WithContext(ctx).Omit("Questions").Create(category).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("category %q already exists: %w", category.Name, apperrors.ErrConflict)
	}
	return err
}

// Update обновляет имя, описание и иконку категории
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if category.Icon == "" {
		category.Icon = entity.DefaultCategoryIcon
	}
	result := r.db.WithContext(ctx).Model(&entity.Category{ID: category.ID}).
		Select("name", "description", "icon").
		Updates(category)
	if isUniqueViolation(result.Error) {
		return fmt.Errorf("category %q already exists: %w", category.Name, apperrors.ErrConflict)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет категорию. Вопросы, варианты и результаты удаляются в той же транзакции,
// не полагаясь только на ON DELETE CASCADE.
func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&entity.Question{}).Select("id").Where("category_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&entity.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&entity.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&entity.Result{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// CountQuestions возвращает количество вопросов в категории
func (r *CategoryRepo) CountQuestions(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Question{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
