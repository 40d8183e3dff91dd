package service

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/repository"
)

// QuizData — категория со всеми вопросами и вариантами, упорядоченными по ID.
// Из неё строятся и игровое, и административное представления.
type QuizData struct {
	Category  *entity.Category
	Questions []entity.Question
}

// QuizService предоставляет чтение категорий и вопросов для прохождения и экспорта
type QuizService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
	loads        singleflight.Group
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	categoryRepo repository.CategoryRepository,
	questionRepo repository.QuestionRepository,
) *QuizService {
	return &QuizService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// ListCategories возвращает все категории
func (s *QuizService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory возвращает категорию по ID (ErrNotFound, если её нет)
func (s *QuizService) GetCategory(ctx context.Context, categoryID uint) (*entity.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

// LoadQuiz загружает категорию с вопросами. Одновременные загрузки одной категории
// схлопываются в один запрос к БД. Общая загрузка не зависит от отмены контекста
// первого вызвавшего: каждый вызов ждёт результат только до отмены своего ctx.
func (s *QuizService) LoadQuiz(ctx context.Context, categoryID uint) (*QuizData, error) {
	key := strconv.FormatUint(uint64(categoryID), 10)
	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(key, func() (interface{}, error) {
		category, err := s.categoryRepo.GetByID(loadCtx, categoryID)
		if err != nil {
			return nil, err
		}
		questions, err := s.questionRepo.ListByCategory(loadCtx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load questions for category %d: %w", categoryID, err)
		}
		return &QuizData{Category: category, Questions: questions}, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*QuizData), nil
	}
}
