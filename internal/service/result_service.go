package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/repository"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
)

// LeaderboardPageSize — фиксированный размер страницы таблицы лидеров
const LeaderboardPageSize = 10

// DefaultGuestNameTTL — сколько живёт гостевое имя в сессии, если не настроено иначе
const DefaultGuestNameTTL = 2 * time.Hour

// Identity описывает, кто отправляет ответы.
// SessionID указывает на сессию браузера, в которой может ожидать гостевое имя.
type Identity struct {
	UserID    *uint
	SessionID string
}

// ResultNotifier получает уведомления о новых результатах
type ResultNotifier interface {
	NotifyResultRecorded(result *entity.Result)
}

// ResultView — результат с данными для страницы результата
type ResultView struct {
	Result     *entity.Result
	Total      int
	Percentage float64
}

// LeaderboardPage — одна страница таблицы лидеров
type LeaderboardPage struct {
	Results    []entity.Result
	Page       int
	PageSize   int
	TotalPages int
	Total      int64
}

// ResultService проверяет ответы, сохраняет результаты и строит таблицу лидеров
type ResultService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	sessionRepo  repository.GuestSessionRepository
	notifier     ResultNotifier
	guestNameTTL time.Duration
}

// NewResultService создает новый сервис результатов. notifier может быть nil.
func NewResultService(
	categoryRepo repository.CategoryRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	sessionRepo repository.GuestSessionRepository,
	notifier ResultNotifier,
	guestNameTTL time.Duration,
) *ResultService {
	if guestNameTTL <= 0 {
		guestNameTTL = DefaultGuestNameTTL
	}
	return &ResultService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		sessionRepo:  sessionRepo,
		notifier:     notifier,
		guestNameTTL: guestNameTTL,
	}
}

// StoreGuestName запоминает гостевое имя для сессии; пустое имя игнорируется
func (s *ResultService) StoreGuestName(ctx context.Context, sessionID, name string) error {
	if sessionID == "" || name == "" {
		return nil
	}
	if len([]rune(name)) > 100 {
		return fmt.Errorf("guest name is longer than 100 characters: %w", apperrors.ErrValidation)
	}
	if err := s.sessionRepo.SetGuestName(ctx, sessionID, name, s.guestNameTTL); err != nil {
		return fmt.Errorf("failed to store guest name: %w", err)
	}
	return nil
}

// GradeSubmission проверяет ответы по вопросам категории.
// Возвращает ErrNotFound для несуществующей категории и ErrNoQuestions для пустой.
func (s *ResultService) GradeSubmission(ctx context.Context, categoryID uint, answers map[uint]string, rawElapsed string) (*GradeOutcome, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	outcome := Grade(questions, answers, ParseElapsed(rawElapsed))
	return &outcome, nil
}

// Record сохраняет проверенную попытку и возвращает её ID.
//
// Порядок определения участника: гостевое имя из сессии (потребляется, даже если пользователь
// аутентифицирован), затем аутентифицированный пользователь, иначе аноним.
func (s *ResultService) Record(ctx context.Context, categoryID uint, outcome GradeOutcome, identity Identity) (*entity.Result, error) {
	result := &entity.Result{
		CategoryID:       categoryID,
		Score:            outcome.Score,
		CorrectAnswers:   outcome.Correct,
		IncorrectAnswers: outcome.Incorrect,
		TimeTaken:        outcome.Elapsed,
	}

	guestName := s.consumeGuestName(ctx, identity.SessionID)
	switch {
	case guestName != "":
		result.GuestName = &guestName
	case identity.UserID != nil:
		userID := *identity.UserID
		result.UserID = &userID
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("[ResultService] Результат #%d сохранён: категория=%d, очки=%d, правильных=%d, неправильных=%d",
		result.ID, categoryID, result.Score, result.CorrectAnswers, result.IncorrectAnswers)

	if s.notifier != nil {
		s.notifier.NotifyResultRecorded(result)
	}
	return result, nil
}

// Submit проверяет ответы и сохраняет результат
func (s *ResultService) Submit(ctx context.Context, categoryID uint, answers map[uint]string, rawElapsed string, identity Identity) (*entity.Result, error) {
	outcome, err := s.GradeSubmission(ctx, categoryID, answers, rawElapsed)
	if err != nil {
		return nil, err
	}
	return s.Record(ctx, categoryID, *outcome, identity)
}

func (s *ResultService) consumeGuestName(ctx context.Context, sessionID string) string {
	if sessionID == "" || s.sessionRepo == nil {
		return ""
	}
	name, err := s.sessionRepo.ConsumeGuestName(ctx, sessionID)
	if err != nil {
		log.Printf("[ResultService] WARNING: не удалось получить гостевое имя для сессии: %v", err)
		return ""
	}
	return name
}

// GetResultView возвращает результат и процент правильных ответов от текущего числа вопросов категории
func (s *ResultService) GetResultView(ctx context.Context, resultID uint) (*ResultView, error) {
	result, err := s.resultRepo.GetByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	total, err := s.categoryRepo.CountQuestions(ctx, result.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	return &ResultView{
		Result:     result,
		Total:      int(total),
		Percentage: result.Percentage(int(total)),
	}, nil
}

// ParsePage разбирает номер страницы; нечисловое или меньше 1 значение даёт 1
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Leaderboard возвращает страницу таблицы лидеров.
// Страница за пределами диапазона заменяется первой.
func (s *ResultService) Leaderboard(ctx context.Context, page int) (*LeaderboardPage, error) {
	if page < 1 {
		page = 1
	}

	results, total, err := s.resultRepo.Leaderboard(ctx, LeaderboardPageSize, (page-1)*LeaderboardPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	totalPages := totalPagesFor(total, LeaderboardPageSize)
	if page > totalPages {
		page = 1
		results, total, err = s.resultRepo.Leaderboard(ctx, LeaderboardPageSize, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load leaderboard: %w", err)
		}
		totalPages = totalPagesFor(total, LeaderboardPageSize)
	}

	return &LeaderboardPage{
		Results:    results,
		Page:       page,
		PageSize:   LeaderboardPageSize,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func totalPagesFor(total int64, pageSize int) int {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

// ListRanked возвращает все результаты в порядке таблицы лидеров
func (s *ResultService) ListRanked(ctx context.Context) ([]entity.Result, error) {
	return s.resultRepo.ListRanked(ctx)
}

// DeleteResult удаляет результат (только для администратора)
func (s *ResultService) DeleteResult(ctx context.Context, resultID uint) error {
	return s.resultRepo.Delete(ctx, resultID)
}
