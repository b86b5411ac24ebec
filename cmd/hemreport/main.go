// hemreport одноразовая выгрузка отчётов из журнала без запуска
// интерактивного приложения
package main

import (
	"flag"
	"log"
	"time"

	"hemsworth/internal/config"
	"hemsworth/internal/export"
	"hemsworth/internal/stats"
	"hemsworth/internal/store"
)

func main() {
	dataDir := flag.String("data", "", "Каталог данных (по умолчанию из окружения или ./data)")
	outDir := flag.String("out", "", "Каталог для отчётов (по умолчанию каталог данных)")
	format := flag.String("format", "both", "Формат отчёта: xlsx, pdf или both")
	flag.Parse()

	cfg := config.Load()
	if *dataDir != "" {
		cfg = config.New(*dataDir, *dataDir)
	}
	if *outDir != "" {
		cfg = config.New(cfg.DataDir, *outDir)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Ошибка создания каталога: %v", err)
	}

	logs := store.NewLogStore(cfg.LogPath, cfg.UndoPath)
	entries, err := logs.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки журнала: %v", err)
	}
	if len(entries) == 0 {
		log.Printf("Журнал пуст: отчёт будет без данных")
	}

	prs := stats.PersonalRecords(entries)
	weekly := stats.WeeklySummary(entries)
	now := time.Now()

	switch *format {
	case "xlsx":
		mustExport(export.WriteExcelReport(cfg.ExportDir, entries, prs, weekly, now))
	case "pdf":
		mustExport(export.WritePDFReport(cfg.ExportDir, entries, now))
	case "both":
		mustExport(export.WriteExcelReport(cfg.ExportDir, entries, prs, weekly, now))
		mustExport(export.WritePDFReport(cfg.ExportDir, entries, now))
	default:
		log.Fatalf("Неизвестный формат: %s (ожидается xlsx, pdf или both)", *format)
	}
}

func mustExport(_ string, err error) {
	if err != nil {
		log.Fatalf("Ошибка экспорта: %v", err)
	}
}
