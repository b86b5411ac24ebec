package store

import (
	"strconv"
	"strings"

	"hemsworth/internal/models"
	"hemsworth/internal/plan"
)

// OverrideStore пользовательские раскладки дней (Hemsworth_Custom_Days.csv).
// Сохранённая раскладка полностью замещает библиотечный план своего
// ключа (неделя, день); построчного слияния нет.
type OverrideStore struct {
	path string
}

// NewOverrideStore создаёт хранилище пользовательских раскладок
func NewOverrideStore(path string) *OverrideStore {
	return &OverrideStore{path: path}
}

// Load читает все сохранённые раскладки
func (s *OverrideStore) Load() ([]models.PlanEntry, error) {
	rows, err := readTable(s.path, models.PlanColumns)
	if err != nil {
		return nil, err
	}
	entries := make([]models.PlanEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.PlanEntry{
			Week:           row[0],
			DayTag:         row[1],
			Order:          parseIntDefault(row[2], 1),
			Lift:           row[3],
			Purpose:        row[4],
			Region:         row[5],
			StandardSets:   row[6],
			HighVolumeSets: row[7],
			Rest:           row[8],
		})
	}
	return entries, nil
}

// SaveDay целиком заменяет раскладку ключа (неделя, день): прежние
// строки ключа удаляются, новые сохраняются перенумерованными 1..N
func (s *OverrideStore) SaveDay(entries []models.PlanEntry, week, day string, layout []models.PlanEntry) ([]models.PlanEntry, error) {
	next := withoutDay(entries, week, day)
	next = append(next, plan.Renumber(layout)...)
	if err := s.persist(next); err != nil {
		return entries, err
	}
	return next, nil
}

// ResetDay удаляет раскладку ключа; последующий Resolve вернётся
// к библиотечному плану
func (s *OverrideStore) ResetDay(entries []models.PlanEntry, week, day string) ([]models.PlanEntry, error) {
	next := withoutDay(entries, week, day)
	if err := s.persist(next); err != nil {
		return entries, err
	}
	return next, nil
}

// Clear удаляет все пользовательские раскладки всех недель
func (s *OverrideStore) Clear() ([]models.PlanEntry, error) {
	if err := s.persist(nil); err != nil {
		return nil, err
	}
	return nil, nil
}

// withoutDay возвращает строки без ключа (неделя, день).
// День сравнивается как в Resolve: без регистра и крайних пробелов.
func withoutDay(entries []models.PlanEntry, week, day string) []models.PlanEntry {
	out := make([]models.PlanEntry, 0, len(entries))
	for _, e := range entries {
		if e.Week == week && sameDay(e.DayTag, day) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sameDay(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (s *OverrideStore) persist(entries []models.PlanEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Week,
			e.DayTag,
			strconv.Itoa(e.Order),
			e.Lift,
			e.Purpose,
			e.Region,
			e.StandardSets,
			e.HighVolumeSets,
			e.Rest,
		})
	}
	return writeTable(s.path, models.PlanColumns, rows)
}
