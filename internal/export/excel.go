// Package export сериализует журнал и агрегаты в отчёты (Excel и PDF).
// Экспорт работает только с переданными снимками и никогда не меняет
// данные приложения.
package export

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"hemsworth/internal/models"

	"github.com/xuri/excelize/v2"
)

// Названия листов отчёта
const (
	SheetLogs   = "All Logs"
	SheetPRs    = "PRs"
	SheetWeekly = "Weekly Summary"
)

// Заголовки листов агрегатов
var (
	prHeaders     = []string{"Lift / Exercise", "Max Weight", "Max Reps", "Max Volume", "Est. 1PM"}
	weeklyHeaders = []string{"WeekISO", "DayTag", "Weight (lbs)", "Reps", "Volume"}
)

// ReportFileName имя файла отчёта с текущей датой
func ReportFileName(now time.Time, ext string) string {
	return fmt.Sprintf("Hemsworth_Report_%s.%s", now.Format("2006-01-02"), ext)
}

// WriteExcelReport пишет отчёт: лист на таблицу, без ограничения строк.
// Возвращает путь созданного файла.
func WriteExcelReport(dir string, entries []models.LogEntry, prs []models.PersonalRecord, weekly []models.WeeklySummaryRow, now time.Time) (string, error) {
	f := buildWorkbook(entries, prs, weekly)
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Ошибка закрытия файла: %v", err)
		}
	}()

	path := filepath.Join(dir, ReportFileName(now, "xlsx"))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("ошибка сохранения отчёта: %w", err)
	}

	log.Printf("📘 Excel отчёт сохранён: %s", path)
	return path, nil
}

// buildWorkbook собирает книгу отчёта в памяти
func buildWorkbook(entries []models.LogEntry, prs []models.PersonalRecord, weekly []models.WeeklySummaryRow) *excelize.File {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", SheetLogs)
	f.NewSheet(SheetPRs)
	f.NewSheet(SheetWeekly)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})

	writeSheet(f, SheetLogs, headerStyle, models.LogColumns, logRows(entries))
	writeSheet(f, SheetPRs, headerStyle, prHeaders, prRows(prs))
	writeSheet(f, SheetWeekly, headerStyle, weeklyHeaders, weeklyRows(weekly))

	f.SetActiveSheet(0)
	return f
}

// writeSheet пишет заголовок и строки одного листа
func writeSheet(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]interface{}) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 18)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", endHeader, headerStyle)

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
}

func logRows(entries []models.LogEntry) [][]interface{} {
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.Date, e.Week, e.DayTag, e.Lift, e.Weight, e.Reps, e.Notes, e.Mode,
		})
	}
	return rows
}

func prRows(prs []models.PersonalRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, []interface{}{
			pr.Lift, pr.MaxWeight, pr.MaxReps, pr.MaxVolume, pr.Estimated1PM,
		})
	}
	return rows
}

func weeklyRows(weekly []models.WeeklySummaryRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(weekly))
	for _, w := range weekly {
		rows = append(rows, []interface{}{
			strconv.Itoa(w.ISOWeek), w.DayTag, w.TotalWeight, w.TotalReps, w.TotalVolume,
		})
	}
	return rows
}
