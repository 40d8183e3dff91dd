package handler

import (
	"errors"
	"fmt"
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

// ContextResultID — ключ контекста с ID результата из URL
const ContextResultID = "resultID"

const (
	answerFieldPrefix = "question_"
	timeTakenField    = "time_taken"
	maxFormMemory     = 1 << 20
)

// ResultHandler обрабатывает отправку ответов, результаты и таблицу лидеров
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler создает новый обработчик результатов
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// parseAnswers собирает ответы из полей question_<id>. Поля с нечисловым id пропускаются.
func parseAnswers(form map[string][]string) map[uint]string {
	answers := make(map[uint]string)
	for key, values := range form {
		if !strings.HasPrefix(key, answerFieldPrefix) || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimPrefix(key, answerFieldPrefix), 10, 32)
		if err != nil {
			continue
		}
		answers[uint(id)] = values[0]
	}
	return answers
}

// Submit проверяет ответы, сохраняет результат и перенаправляет на страницу результата
func (h *ResultHandler) Submit(c *gin.Context) {
	categoryID := c.GetUint(ContextCategoryID)

	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form"})
		return
	}

	identity := service.Identity{SessionID: middleware.SessionIDFromContext(c)}
	if userID, ok := middleware.UserIDFromContext(c); ok {
		identity.UserID = &userID
	}

	result, err := h.resultService.Submit(
		c.Request.Context(),
		categoryID,
		parseAnswers(c.Request.PostForm),
		c.Request.PostForm.Get(timeTakenField),
		identity,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, service.ErrNoQuestions) {
			log.Printf("[ResultHandler] Отправка в категорию %d отклонена: %v", categoryID, err)
			c.Redirect(http.StatusFound, CategoriesPath)
			return
		}
		handleError(c, "ResultHandler", err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/results/%d", result.ID))
}

// GetResult возвращает результат с процентом правильных ответов
func (h *ResultHandler) GetResult(c *gin.Context) {
	view, err := h.resultService.GetResultView(c.Request.Context(), c.GetUint(ContextResultID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.Redirect(http.StatusFound, CategoriesPath)
			return
		}
		handleError(c, "ResultHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResultViewResponse(view))
}

// Leaderboard возвращает страницу таблицы лидеров
func (h *ResultHandler) Leaderboard(c *gin.Context) {
	page, err := h.resultService.Leaderboard(c.Request.Context(), service.ParsePage(c.Query("page")))
	if err != nil {
		handleError(c, "ResultHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(page))
}
