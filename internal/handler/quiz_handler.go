package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Hanikakadiya/Master-Quiz/internal/handler/dto"
	"github.com/Hanikakadiya/Master-Quiz/internal/middleware"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// CategoriesPath — страница выбора категории, сюда ведут все перенаправления при ошибках
const CategoriesPath = "/categories"

// ContextCategoryID — ключ контекста с ID категории из URL
const ContextCategoryID = "categoryID"

// QuizHandler обрабатывает запросы, связанные с прохождением викторин
type QuizHandler struct {
	quizService   *service.QuizService
	resultService *service.ResultService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService, resultService *service.ResultService) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		resultService: resultService,
	}
}

// ListCategories возвращает все категории
func (h *QuizHandler) ListCategories(c *gin.Context) {
	categories, err := h.quizService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// GetQuiz возвращает категорию с вопросами для прохождения
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	h.renderQuiz(c, c.GetUint(ContextCategoryID))
}

// StartQuiz сохраняет гостевое имя (если передано) и возвращает викторину.
// Имя сохраняется только для существующей категории.
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	categoryID := c.GetUint(ContextCategoryID)

	data, ok := h.loadQuiz(c, categoryID)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		name = strings.TrimSpace(c.PostForm("guest_name"))
	}
	if name != "" {
		err := h.resultService.StoreGuestName(c.Request.Context(), middleware.SessionIDFromContext(c), name)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			// Викторина доступна и без имени: результат будет записан без гостевого имени
			log.Printf("[QuizHandler] Не удалось сохранить гостевое имя для категории %d: %v", categoryID, err)
		}
	}

	c.JSON(http.StatusOK, dto.NewPlayerQuizResponse(data))
}

func (h *QuizHandler) renderQuiz(c *gin.Context, categoryID uint) {
	data, ok := h.loadQuiz(c, categoryID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewPlayerQuizResponse(data))
}

// loadQuiz загружает викторину для страниц; неизвестная категория перенаправляет на список
func (h *QuizHandler) loadQuiz(c *gin.Context, categoryID uint) (*service.QuizData, bool) {
	data, err := h.quizService.LoadQuiz(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.Redirect(http.StatusFound, CategoriesPath)
			return nil, false
		}
		handleError(c, "QuizHandler", err)
		return nil, false
	}
	return data, true
}

// GetQuizData отдаёт игровое представление викторины (без правильных ответов)
func (h *QuizHandler) GetQuizData(c *gin.Context) {
	data, ok := h.loadForExport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizDataResponse(data))
}

// GetQuestions отдаёт административное представление викторины (с правильными ответами и сложностью)
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	data, ok := h.loadForExport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminQuizResponse(data))
}

func (h *QuizHandler) loadForExport(c *gin.Context) (*service.QuizData, bool) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return nil, false
	}

	data, err := h.quizService.LoadQuiz(c.Request.Context(), uint(categoryID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return nil, false
		}
		handleError(c, "QuizHandler", err)
		return nil, false
	}
	return data, true
}
