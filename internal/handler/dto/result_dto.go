package dto

import (
	"time"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// ResultSummary — основные поля результата
type ResultSummary struct {
	ID          uint      `json:"id"`
	Participant string    `json:"participant"`
	IsGuest     bool      `json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResultViewResponse — страница результата
type ResultViewResponse struct {
	Result     ResultSummary     `json:"result"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Percentage float64           `json:"percentage"`
	Score      int               `json:"score"`
	Total      int               `json:"total"`
	Correct    int               `json:"correct"`
	Incorrect  int               `json:"incorrect"`
	TimeTaken  string            `json:"time_taken"`
}

// LeaderboardEntry — строка таблицы лидеров
type LeaderboardEntry struct {
	Rank             int       `json:"rank"`
	ResultID         uint      `json:"result_id"`
	Participant      string    `json:"participant"`
	Category         string    `json:"category"`
	Score            int       `json:"score"`
	CorrectAnswers   int       `json:"correct_answers"`
	IncorrectAnswers int       `json:"incorrect_answers"`
	TimeTaken        string    `json:"time_taken"`
	CreatedAt        time.Time `json:"created_at"`
}

// LeaderboardResponse — страница таблицы лидеров
type LeaderboardResponse struct {
	Results     []LeaderboardEntry `json:"results"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
	TotalPages  int                `json:"total_pages"`
	Total       int64              `json:"total"`
	HasPrevious bool               `json:"has_previous"`
	HasNext     bool               `json:"has_next"`
}

func newResultSummary(r *entity.Result) ResultSummary {
	return ResultSummary{
		ID:          r.ID,
		Participant: r.DisplayName(),
		IsGuest:     r.GuestName != nil && *r.GuestName != "",
		CreatedAt:   r.CreatedAt,
	}
}

// NewResultViewResponse создает DTO страницы результата
func NewResultViewResponse(view *service.ResultView) ResultViewResponse {
	r := view.Result
	resp := ResultViewResponse{
		Result:     newResultSummary(r),
		Percentage: view.Percentage,
		Score:      r.Score,
		Total:      view.Total,
		Correct:    r.CorrectAnswers,
		Incorrect:  r.IncorrectAnswers,
		TimeTaken:  r.FormattedTime(),
	}
	if r.Category != nil {
		category := NewCategoryResponse(r.Category)
		resp.Category = &category
	}
	return resp
}

// NewLeaderboardResponse создает DTO страницы таблицы лидеров.
// Место считается от начала таблицы: (page-1)*pageSize + позиция на странице.
func NewLeaderboardResponse(page *service.LeaderboardPage) LeaderboardResponse {
	offset := (page.Page - 1) * page.PageSize
	entries := make([]LeaderboardEntry, len(page.Results))
	for i := range page.Results {
		r := &page.Results[i]
		category := ""
		if r.Category != nil {
			category = r.Category.Name
		}
		entries[i] = LeaderboardEntry{
			Rank:             offset + i + 1,
			ResultID:         r.ID,
			Participant:      r.DisplayName(),
			Category:         category,
			Score:            r.Score,
			CorrectAnswers:   r.CorrectAnswers,
			IncorrectAnswers: r.IncorrectAnswers,
			TimeTaken:        r.FormattedTime(),
			CreatedAt:        r.CreatedAt,
		}
	}
	return LeaderboardResponse{
		Results:     entries,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalPages:  page.TotalPages,
		Total:       page.Total,
		HasPrevious: page.Page > 1,
		HasNext:     page.Page < page.TotalPages,
	}
}
