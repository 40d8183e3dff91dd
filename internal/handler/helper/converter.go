package helper

import (
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// QuestionOption представляет вариант ответа для игрока (без признака правильности)
type QuestionOption struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// ConvertOptionsToObjects преобразует варианты ответа в объекты для игрока.
// ID — первичный ключ варианта: именно его игрок отправляет в question_<id>.
func ConvertOptionsToObjects(options []entity.Option) []QuestionOption {
	converted := make([]QuestionOption, len(options))
	for i, opt := range options {
		converted[i] = QuestionOption{ID: opt.ID, Text: opt.Text}
	}
	return converted
}
