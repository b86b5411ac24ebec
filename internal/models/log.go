package models

import "time"

// DateLayout формат даты в журнале (как пишет исходное приложение)
const DateLayout = "2006-01-02 15:04"

// LogEntry одна записанная серия (вес x повторы). Журнал append-only,
// идентичность строки позиционная, отдельного id нет.
type LogEntry struct {
	Date   string
	Week   string
	DayTag string
	Lift   string
	Weight float64
	Reps   int
	Notes  string
	Mode   string
}

// Volume тренировочный объём серии: вес x повторы
func (e LogEntry) Volume() float64 {
	return e.Weight * float64(e.Reps)
}

// ParsedDate разбирает дату записи; ok=false для нечитаемых дат
func (e LogEntry) ParsedDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Equal сравнение по всем полям (используется при откате bulk-сохранения)
func (e LogEntry) Equal(other LogEntry) bool {
	return e == other
}

// Названия колонок персистентных таблиц, в порядке файла.
// Совпадают со схемой исходных CSV/Excel файлов.
var (
	LibraryColumns = []string{
		"DayTag", "Lift / Exercise", "Purpose / Role", "Region / Muscle Focus",
		"Standard Sets×Reps", "Hemsworth Sets×Reps", "Rest",
	}
	PlanColumns = []string{
		"Week", "DayTag", "Order", "Lift / Exercise", "Purpose / Role",
		"Region / Muscle Focus", "Standard Sets×Reps", "Hemsworth Sets×Reps", "Rest",
	}
	LogColumns = []string{
		"Date", "Week", "DayTag", "Lift / Exercise", "Weight (lbs)", "Reps", "Notes", "Mode",
	}
	BlockColumns = []string{
		"Lift / Exercise", "BlockGroup", "DayTag", "Purpose / Role",
	}
)
