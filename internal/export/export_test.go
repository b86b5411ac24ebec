package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hemsworth/internal/models"
	"hemsworth/internal/stats"

	"github.com/xuri/excelize/v2"
)

func sampleLog() []models.LogEntry {
	return []models.LogEntry{
		{Date: "2024-01-01 10:00", Week: "1", DayTag: "Day 1", Lift: "Squat", Weight: 200, Reps: 5, Mode: string(models.ModeStandard)},
		{Date: "2024-01-08 09:30", Week: "1", DayTag: "Day 1", Lift: "Squat", Weight: 210, Reps: 5, Notes: "felt strong", Mode: string(models.ModeStandard)},
	}
}

func TestWriteExcelReport(t *testing.T) {
	dir := t.TempDir()
	entries := sampleLog()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	path, err := WriteExcelReport(dir, entries, stats.PersonalRecords(entries), stats.WeeklySummary(entries), now)
	if err != nil {
		t.Fatalf("WriteExcelReport() error = %v", err)
	}
	if filepath.Base(path) != "Hemsworth_Report_2024-02-01.xlsx" {
		t.Errorf("report name = %s", filepath.Base(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SheetLogs, SheetPRs, SheetWeekly}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i, s := range want {
		if sheets[i] != s {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], s)
		}
	}

	// заголовок и первая строка журнала
	if v, _ := f.GetCellValue(SheetLogs, "A1"); v != "Date" {
		t.Errorf("logs A1 = %q, want Date", v)
	}
	if v, _ := f.GetCellValue(SheetLogs, "D2"); v != "Squat" {
		t.Errorf("logs D2 = %q, want Squat", v)
	}
	if v, _ := f.GetCellValue(SheetPRs, "B2"); v != "210" {
		t.Errorf("PRs B2 = %q, want 210", v)
	}
}

func TestWriteExcelReport_EmptyLog(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	path, err := WriteExcelReport(dir, nil, nil, nil, now)
	if err != nil {
		t.Fatalf("WriteExcelReport() error = %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue(SheetPRs, "A1"); v != "Lift / Exercise" {
		t.Errorf("empty report still needs headers, PRs A1 = %q", v)
	}
}

func TestWritePDFReport(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	path, err := WritePDFReport(dir, sampleLog(), now)
	if err != nil {
		t.Fatalf("WritePDFReport() error = %v", err)
	}
	if filepath.Base(path) != "Hemsworth_Report_2024-02-01.pdf" {
		t.Errorf("report name = %s", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF report is empty")
	}
}
