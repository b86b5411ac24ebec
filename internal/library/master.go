package library

import (
	"sort"

	"hemsworth/internal/models"
)

// Master объединяет библиотеки недели 1 (основная) и недели 2 (вариация)
type Master struct {
	Week1 Library
	Week2 Library
}

// LoadMaster загружает обе недели; каждая неделя деградирует до пустой
// библиотеки независимо от другой
func LoadMaster(week1Path, week2Path string) (Master, error) {
	w1, err := Load(week1Path)
	if err != nil {
		return Master{}, err
	}
	w2, err := Load(week2Path)
	if err != nil {
		return Master{}, err
	}
	return Master{Week1: w1, Week2: w2}, nil
}

// ForWeek возвращает активную библиотеку выбранной недели
func (m Master) ForWeek(week string) Library {
	if week == models.Week2 {
		return m.Week2
	}
	return m.Week1
}

// Lookup ищет метаданные упражнения: сначала неделя 1, потом неделя 2
func (m Master) Lookup(lift string) (models.Exercise, bool) {
	if ex, ok := m.Week1.Lookup(lift); ok {
		return ex, true
	}
	return m.Week2.Lookup(lift)
}

// AllLifts возвращает отсортированное объединение упражнений обеих недель
func (m Master) AllLifts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, lib := range []Library{m.Week1, m.Week2} {
		for _, r := range lib.Rows() {
			if r.Lift == "" || seen[r.Lift] {
				continue
			}
			seen[r.Lift] = true
			out = append(out, r.Lift)
		}
	}
	sort.Strings(out)
	return out
}
