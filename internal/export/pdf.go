package export

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"hemsworth/internal/models"
	"hemsworth/internal/stats"

	"github.com/go-pdf/fpdf"
)

// topN сколько строк попадает в таблицы "лучших" PDF-отчёта
const topN = 10

// WritePDFReport пишет постраничный текстовый отчёт: заголовок, время
// формирования, таблица самых тяжёлых подъёмов и таблица дней с
// наибольшим объёмом. Возвращает путь созданного файла.
func WritePDFReport(dir string, entries []models.LogEntry, now time.Time) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Hemsworth Training Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated: "+now.Format(models.DateLayout), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writePDFTable(pdf, fmt.Sprintf("Top %d Heaviest Lifts", topN),
		[]string{"Date", "Lift", "Weight (lbs)", "Reps"},
		heaviestRows(stats.TopHeaviestSets(entries, topN)))

	pdf.Ln(8)

	writePDFTable(pdf, fmt.Sprintf("Top %d Highest-Volume Days", topN),
		[]string{"Date", "Volume"},
		volumeRows(stats.TopVolumeDays(entries, topN)))

	path := filepath.Join(dir, ReportFileName(now, "pdf"))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("ошибка сохранения PDF отчёта: %w", err)
	}

	log.Printf("📕 PDF отчёт сохранён: %s", path)
	return path, nil
}

// writePDFTable рисует таблицу с заголовком секции; перенос страниц
// делает fpdf автоматически
func writePDFTable(pdf *fpdf.Fpdf, title string, headers []string, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)

	colWidth := 180.0 / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(31, 78, 121)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	if len(rows) == 0 {
		pdf.CellFormat(colWidth*float64(len(headers)), 7, "no data", "1", 1, "C", false, 0, "")
		return
	}
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func heaviestRows(sets []models.HeaviestSet) [][]string {
	rows := make([][]string, 0, len(sets))
	for _, s := range sets {
		rows = append(rows, []string{
			s.Date,
			s.Lift,
			strconv.FormatFloat(s.Weight, 'f', -1, 64),
			strconv.Itoa(s.Reps),
		})
	}
	return rows
}

func volumeRows(days []models.VolumeDay) [][]string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date,
			strconv.FormatFloat(d.Volume, 'f', -1, 64),
		})
	}
	return rows
}
