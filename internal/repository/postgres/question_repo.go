package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("options.id ASC")
}

// ListByCategory возвращает вопросы категории в порядке первичного ключа, варианты тоже по ID
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// GetByID возвращает вопрос с вариантами
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).Preload("Options", orderedOptions).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Create сохраняет вопрос и его варианты в одной транзакции
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Category{}).Where("id = ?", question.CategoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return tx.Create(question).Error
	})
	if isForeignKeyViolation(err) {
		return apperrors.ErrNotFound
	}
	return err
}

// Update обновляет текст и сложность вопроса и заменяет его варианты
func (r *QuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Question{ID: question.ID}).
			Select("text", "difficulty").
			Updates(question)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&entity.Option{}).Error; err != nil {
			return err
		}
		for i := range question.Options {
			question.Options[i].ID = 0
			question.Options[i].QuestionID = question.ID
		}
		if len(question.Options) == 0 {
			return nil
		}
		return tx.Create(&question.Options).Error
	})
}

// Delete удаляет вопрос вместе с вариантами
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&entity.Option{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
