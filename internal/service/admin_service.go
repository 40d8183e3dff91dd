package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/repository"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
)

// CategoryInput — данные для создания или изменения категории
type CategoryInput struct {
	Name        string
	Description string
	Icon        string
}

// OptionInput — вариант ответа во входных данных вопроса
type OptionInput struct {
	Text      string `yaml:"text"`
	IsCorrect bool   `yaml:"correct"`
}

// QuestionInput — данные для создания или изменения вопроса
type QuestionInput struct {
	Text       string
	Difficulty entity.Difficulty
	Options    []OptionInput
}

// AdminService управляет категориями и вопросами. Все изменения вопросов проходят
// проверку "ровно 4 варианта, ровно 1 правильный".
type AdminService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewAdminService создает новый административный сервис
func NewAdminService(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) *AdminService {
	return &AdminService{categoryRepo: categoryRepo, questionRepo: questionRepo}
}

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), apperrors.ErrValidation)
}

func (in CategoryInput) toEntity() (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("category name is required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, validationErr("category name must be at most 100 characters")
	}
	icon := strings.TrimSpace(in.Icon)
	if utf8.RuneCountInString(icon) > 50 {
		return nil, validationErr("category icon must be at most 50 characters")
	}
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	return &entity.Category{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Icon:        icon,
	}, nil
}

// CreateCategory создает категорию
func (s *AdminService) CreateCategory(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	category, err := in.toEntity()
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	log.Printf("[AdminService] Создана категория #%d %q", category.ID, category.Name)
	return category, nil
}

// UpdateCategory изменяет категорию
func (s *AdminService) UpdateCategory(ctx context.Context, categoryID uint, in CategoryInput) (*entity.Category, error) {
	category, err := in.toEntity()
	if err != nil {
		return nil, err
	}
	category.ID = categoryID
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(ctx, categoryID)
}

// DeleteCategory удаляет категорию вместе с вопросами и результатами
func (s *AdminService) DeleteCategory(ctx context.Context, categoryID uint) error {
	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		return err
	}
	log.Printf("[AdminService] Категория #%d удалена", categoryID)
	return nil
}

func (in QuestionInput) toEntity() (*entity.Question, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, validationErr("question text is required")
	}
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = entity.DifficultyEasy
	}
	if !difficulty.IsValid() {
		return nil, validationErr("unknown difficulty %q", difficulty)
	}

	q := &entity.Question{Text: text, Difficulty: difficulty}
	for _, o := range in.Options {
		optText := strings.TrimSpace(o.Text)
		if utf8.RuneCountInString(optText) > 255 {
			return nil, validationErr("option text must be at most 255 characters")
		}
		q.Options = append(q.Options, entity.Option{Text: optText, IsCorrect: o.IsCorrect})
	}
	if err := q.ValidateOptions(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	return q, nil
}

// CreateQuestion добавляет вопрос в категорию
func (s *AdminService) CreateQuestion(ctx context.Context, categoryID uint, in QuestionInput) (*entity.Question, error) {
	q, err := in.toEntity()
	if err != nil {
		return nil, err
	}
	q.CategoryID = categoryID
	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// GetQuestion возвращает вопрос с вариантами
func (s *AdminService) GetQuestion(ctx context.Context, questionID uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(ctx, questionID)
}

// UpdateQuestion заменяет текст, сложность и варианты вопроса
func (s *AdminService) UpdateQuestion(ctx context.Context, questionID uint, in QuestionInput) (*entity.Question, error) {
	q, err := in.toEntity()
	if err != nil {
		return nil, err
	}
	q.ID = questionID
	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	return s.questionRepo.GetByID(ctx, questionID)
}

// DeleteQuestion удаляет вопрос вместе с вариантами
func (s *AdminService) DeleteQuestion(ctx context.Context, questionID uint) error {
	return s.questionRepo.Delete(ctx, questionID)
}
