// Package library загружает библиотеку упражнений из Excel файлов
// и нормализует её схему (Arrow-safe подход исходного приложения).
package library

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"hemsworth/internal/models"

	"github.com/xuri/excelize/v2"
)

// ErrNoDayTag возвращается, если в файле библиотеки нет колонки DayTag:
// без неё план дня собрать невозможно
var ErrNoDayTag = errors.New("в библиотеке отсутствует колонка DayTag")

// Library каноническая библиотека упражнений одной недели. После загрузки
// не изменяется.
type Library struct {
	rows []models.Exercise
}

// NewLibrary собирает библиотеку из готовых строк (для тестов и конструктора)
func NewLibrary(rows []models.Exercise) Library {
	return Library{rows: rows}
}

// Rows возвращает все строки библиотеки в исходном порядке
func (l Library) Rows() []models.Exercise {
	return l.rows
}

// Empty истинно для библиотеки без единой строки
func (l Library) Empty() bool {
	return len(l.rows) == 0
}

// ForDay возвращает строки дня в исходном порядке.
// Сравнение DayTag без учёта регистра и крайних пробелов.
func (l Library) ForDay(day string) []models.Exercise {
	want := strings.ToLower(strings.TrimSpace(day))
	var out []models.Exercise
	for _, r := range l.rows {
		if strings.ToLower(strings.TrimSpace(r.DayTag)) == want {
			out = append(out, r)
		}
	}
	return out
}

// Lookup ищет упражнение по точному названию; ok=false если не найдено
func (l Library) Lookup(lift string) (models.Exercise, bool) {
	for _, r := range l.rows {
		if r.Lift == lift {
			return r, true
		}
	}
	return models.Exercise{}, false
}

// Lifts возвращает отсортированный список уникальных названий упражнений
func (l Library) Lifts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range l.rows {
		if r.Lift == "" || seen[r.Lift] {
			continue
		}
		seen[r.Lift] = true
		out = append(out, r.Lift)
	}
	sort.Strings(out)
	return out
}

// Load читает Excel файл библиотеки. Отсутствующий файл не ошибка:
// возвращается пустая библиотека, чтобы пользователь мог собрать день
// с нуля (политика "degrade to empty" поздних версий).
func Load(path string) (Library, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("⚠️ Файл библиотеки не найден: %s (работаем с пустой)", path)
		return Library{}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("ошибка открытия библиотеки %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Library{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Library{}, fmt.Errorf("ошибка чтения листа %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Library{}, nil
	}

	cols := normalizeHeader(rows[0])
	if _, ok := cols["DayTag"]; !ok {
		return Library{}, ErrNoDayTag
	}

	lib := Library{}
	for _, row := range rows[1:] {
		ex := models.Exercise{
			DayTag:         getCell(row, cols["DayTag"]),
			Lift:           getCell(row, cols["Lift / Exercise"]),
			Purpose:        getCell(row, cols["Purpose / Role"]),
			Region:         getCell(row, cols["Region / Muscle Focus"]),
			StandardSets:   getCell(row, cols["Standard Sets×Reps"]),
			HighVolumeSets: getCell(row, cols["Hemsworth Sets×Reps"]),
			Rest:           getCell(row, cols["Rest"]),
		}
		if ex.DayTag == "" && ex.Lift == "" {
			continue
		}
		lib.rows = append(lib.rows, ex)
	}

	return lib, nil
}

// normalizeHeader сопоставляет канонические имена колонок их индексам.
// Имена обрезаются; любой вариант написания "rest" приводится к "Rest".
// Отсутствующие колонки получают индекс -1 (ячейки будут пустыми),
// колонка никогда не выбрасывается.
func normalizeHeader(header []string) map[string]int {
	cols := make(map[string]int)
	for _, c := range models.LibraryColumns {
		cols[c] = -1
	}
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if strings.Contains(strings.ToLower(name), "rest") {
			name = "Rest"
		}
		if _, known := cols[name]; known && cols[name] == -1 {
			cols[name] = i
		}
	}
	return cols
}

// getCell безопасно читает ячейку строки
func getCell(row []string, index int) string {
	if index >= 0 && index < len(row) {
		return strings.TrimSpace(row[index])
	}
	return ""
}
