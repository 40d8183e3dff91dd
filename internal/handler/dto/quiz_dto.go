package dto

import (
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/handler/helper"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// CategoryResponse представляет категорию
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CategoryListResponse — список категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// PlayerQuestionResponse — вопрос для прохождения, правильный ответ не раскрывается
type PlayerQuestionResponse struct {
	ID      uint                    `json:"id"`
	Text    string                  `json:"text"`
	Options []helper.QuestionOption `json:"options"`
}

// PlayerQuizResponse — категория и её вопросы для игрока
type PlayerQuizResponse struct {
	Category  CategoryResponse         `json:"category"`
	Questions []PlayerQuestionResponse `json:"questions"`
}

// QuizDataResponse — игровой экспорт викторины: категория передаётся названием
type QuizDataResponse struct {
	Category  string                   `json:"category"`
	Questions []PlayerQuestionResponse `json:"questions"`
}

// AdminOptionResponse — вариант ответа с признаком правильности
type AdminOptionResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// AdminQuestionResponse — вопрос для администратора
type AdminQuestionResponse struct {
	ID         uint                  `json:"id"`
	CategoryID uint                  `json:"category_id,omitempty"`
	Text       string                `json:"text"`
	Difficulty entity.Difficulty     `json:"difficulty"`
	Options    []AdminOptionResponse `json:"options"`
}

// AdminQuizResponse — административный экспорт викторины: название категории и вопросы с ответами
type AdminQuizResponse struct {
	Category  string                  `json:"category"`
	Questions []AdminQuestionResponse `json:"questions"`
}

// NewCategoryResponse создает DTO категории
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.IconOrDefault(),
	}
}

// NewCategoryListResponse создает DTO списка категорий
func NewCategoryListResponse(categories []entity.Category) CategoryListResponse {
	resp := CategoryListResponse{Categories: make([]CategoryResponse, len(categories))}
	for i := range categories {
		resp.Categories[i] = NewCategoryResponse(&categories[i])
	}
	return resp
}

// NewPlayerQuizResponse создает игровое представление викторины
func NewPlayerQuizResponse(data *service.QuizData) PlayerQuizResponse {
	return PlayerQuizResponse{
		Category:  NewCategoryResponse(data.Category),
		Questions: newPlayerQuestions(data.Questions),
	}
}

// NewQuizDataResponse создает игровой экспорт викторины
func NewQuizDataResponse(data *service.QuizData) QuizDataResponse {
	return QuizDataResponse{
		Category:  data.Category.Name,
		Questions: newPlayerQuestions(data.Questions),
	}
}

func newPlayerQuestions(questions []entity.Question) []PlayerQuestionResponse {
	resp := make([]PlayerQuestionResponse, len(questions))
	for i, q := range questions {
		resp[i] = PlayerQuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: helper.ConvertOptionsToObjects(q.Options),
		}
	}
	return resp
}

// NewAdminQuestionResponse создает административное представление вопроса
func NewAdminQuestionResponse(q *entity.Question) AdminQuestionResponse {
	options := make([]AdminOptionResponse, len(q.Options))
	for i, o := range q.Options {
		options[i] = AdminOptionResponse{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect}
	}
	return AdminQuestionResponse{
		ID:         q.ID,
		CategoryID: q.CategoryID,
		Text:       q.Text,
		Difficulty: q.Difficulty,
		Options:    options,
	}
}

// NewAdminQuizResponse создает административное представление викторины
func NewAdminQuizResponse(data *service.QuizData) AdminQuizResponse {
	resp := AdminQuizResponse{
		Category:  data.Category.Name,
		Questions: make([]AdminQuestionResponse, len(data.Questions)),
	}
	for i := range data.Questions {
		q := NewAdminQuestionResponse(&data.Questions[i])
		// категория уже указана на верхнем уровне
		q.CategoryID = 0
		resp.Questions[i] = q
	}
	return resp
}
