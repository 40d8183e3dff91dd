// Package export выгружает таблицу лидеров в CSV и XLSX
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// DateLayout — формат даты результата в выгрузке
const DateLayout = "Jan 02, 2006 - 15:04"

const sheetName = "Leaderboard"

var headers = []string{"Rank", "Participant", "Category", "Score", "Correct", "Incorrect", "Time", "Date"}

// Format — формат выгрузки
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat возвращает формат по строке; неизвестные значения дают CSV
func ParseFormat(s string) Format {
	if Format(s) == FormatXLSX {
		return FormatXLSX
	}
	return FormatCSV
}

// ContentType возвращает MIME-тип формата
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write выгружает результаты в w в выбранном формате
func Write(w io.Writer, f Format, results []entity.Result) error {
	if f == FormatXLSX {
		return WriteXLSX(w, results)
	}
	return WriteCSV(w, results)
}

func categoryName(r *entity.Result) string {
	if r.Category == nil {
		return ""
	}
	return r.Category.Name
}

// WriteCSV пишет CSV с BOM, чтобы Excel корректно открыл UTF-8
func WriteCSV(w io.Writer, results []entity.Result) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	for i := range results {
		r := &results[i]
		row := []string{
			strconv.Itoa(i + 1),
			SanitizeCell(r.DisplayName()),
			SanitizeCell(categoryName(r)),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.CorrectAnswers),
			strconv.Itoa(r.IncorrectAnswers),
			r.FormattedTime(),
			r.CreatedAt.Format(DateLayout),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX пишет книгу Excel через StreamWriter
func WriteXLSX(w io.Writer, results []entity.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i := range results {
		r := &results[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			i + 1,
			SanitizeCell(r.DisplayName()),
			SanitizeCell(categoryName(r)),
			r.Score,
			r.CorrectAnswers,
			r.IncorrectAnswers,
			r.FormattedTime(),
			r.CreatedAt.Format(DateLayout),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// SanitizeCell экранирует значения, которые табличный редактор принял бы за формулу
func SanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
