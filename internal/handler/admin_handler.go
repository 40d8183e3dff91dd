package handler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/export"
	"github.com/Hanikakadiya/Master-Quiz/internal/handler/dto"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// Ключи контекста с ID из URL административных маршрутов
const (
	ContextAdminCategoryID = "adminCategoryID"
	ContextQuestionID      = "questionID"
	ContextAdminResultID   = "adminResultID"
)

// AdminHandler обрабатывает административные запросы
type AdminHandler struct {
	adminService  *service.AdminService
	resultService *service.ResultService
}

// NewAdminHandler создает новый административный обработчик
func NewAdminHandler(adminService *service.AdminService, resultService *service.ResultService) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		resultService: resultService,
	}
}

// CategoryRequest представляет запрос на создание или изменение категории
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
}

// OptionRequest — вариант ответа в запросе
type OptionRequest struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRequest представляет запрос на создание или изменение вопроса.
// Количество вариантов и правильных ответов проверяет сервис (ответ 422).
type QuestionRequest struct {
	Text       string          `json:"text" binding:"required"`
	Difficulty string          `json:"difficulty"`
	Options    []OptionRequest `json:"options"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Description: r.Description, Icon: r.Icon}
}

func (r QuestionRequest) toInput() service.QuestionInput {
	in := service.QuestionInput{
		Text:       r.Text,
		Difficulty: entity.Difficulty(r.Difficulty),
		Options:    make([]service.OptionInput, len(r.Options)),
	}
	for i, o := range r.Options {
		in.Options[i] = service.OptionInput{Text: o.Text, IsCorrect: o.IsCorrect}
	}
	return in
}

// CreateCategory создает категорию
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.adminService.CreateCategory(c.Request.Context(), req.toInput())
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// UpdateCategory изменяет категорию
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.adminService.UpdateCategory(c.Request.Context(), c.GetUint(ContextAdminCategoryID), req.toInput())
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory удаляет категорию вместе с вопросами и результатами
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.adminService.DeleteCategory(c.Request.Context(), c.GetUint(ContextAdminCategoryID)); err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateQuestion добавляет вопрос в категорию
func (h *AdminHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.adminService.CreateQuestion(c.Request.Context(), c.GetUint(ContextAdminCategoryID), req.toInput())
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAdminQuestionResponse(question))
}

// GetQuestion возвращает вопрос с правильным ответом
func (h *AdminHandler) GetQuestion(c *gin.Context) {
	question, err := h.adminService.GetQuestion(c.Request.Context(), c.GetUint(ContextQuestionID))
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminQuestionResponse(question))
}

// UpdateQuestion заменяет текст, сложность и варианты вопроса
func (h *AdminHandler) UpdateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.adminService.UpdateQuestion(c.Request.Context(), c.GetUint(ContextQuestionID), req.toInput())
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminQuestionResponse(question))
}

// DeleteQuestion удаляет вопрос
func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	if err := h.adminService.DeleteQuestion(c.Request.Context(), c.GetUint(ContextQuestionID)); err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListResults возвращает результаты в порядке таблицы лидеров
func (h *AdminHandler) ListResults(c *gin.Context) {
	page, err := h.resultService.Leaderboard(c.Request.Context(), service.ParsePage(c.Query("page")))
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(page))
}

// DeleteResult удаляет результат
func (h *AdminHandler) DeleteResult(c *gin.Context) {
	if err := h.resultService.DeleteResult(c.Request.Context(), c.GetUint(ContextAdminResultID)); err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportResults выгружает всю таблицу лидеров в CSV или XLSX
func (h *AdminHandler) ExportResults(c *gin.Context) {
	format := export.ParseFormat(c.DefaultQuery("format", string(export.FormatCSV)))

	results, err := h.resultService.ListRanked(c.Request.Context())
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}

	// Пишем в буфер, чтобы ошибка сериализации не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := export.Write(&buf, format, results); err != nil {
		log.Printf("[AdminHandler] Ошибка экспорта результатов (%s): %v", format, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export results"})
		return
	}

	filename := fmt.Sprintf("leaderboard_%s.%s", time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
