package service

import (
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// GradeOutcome — результат проверки одной отправки ответов
type GradeOutcome struct {
	Score     int
	Correct   int
	Incorrect int
	Elapsed   time.Duration
}

// maxElapsedSeconds — больше этого значение не помещается в time.Duration
const maxElapsedSeconds = float64(math.MaxInt64) / float64(time.Second)

// Grade подсчитывает очки по вопросам категории.
//
// answers содержит сырые значения выбранных вариантов по ID вопроса. Отсутствующий или пустой
// ответ пропускается и не считается неправильным. Нечисловой ID варианта приводится к 0
// и засчитывается как неправильный ответ. Вопрос без правильного варианта пропускается.
func Grade(questions []entity.Question, answers map[uint]string, elapsed time.Duration) GradeOutcome {
	outcome := GradeOutcome{Elapsed: elapsed}

	for i := range questions {
		q := &questions[i]
		correct, ok := q.CorrectOption()
		if !ok {
			log.Printf("[Grading] WARNING: question %d has no correct option, skipping", q.ID)
			continue
		}

		raw, answered := answers[q.ID]
		if !answered || strings.TrimSpace(raw) == "" {
			continue
		}

		if ParseOptionID(raw) == correct.ID {
			outcome.Score++
			outcome.Correct++
		} else {
			outcome.Incorrect++
		}
	}

	return outcome
}

// ParseOptionID разбирает ID варианта. Всё, что не является положительным целым, даёт 0.
func ParseOptionID(raw string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ParseElapsed разбирает затраченное время в секундах из строки клиента.
// Ошибка разбора, NaN, бесконечность и отрицательные значения дают 0.
func ParseElapsed(raw string) time.Duration {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 || seconds >= maxElapsedSeconds {
		return 0
	}
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
