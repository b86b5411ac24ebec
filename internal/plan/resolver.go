// Package plan строит эффективный план дня: пользовательская раскладка
// полностью перекрывает библиотечную, иначе план синтезируется из
// библиотеки выбранной недели. Все функции чистые: принимают снимки
// и возвращают новые значения.
package plan

import (
	"sort"
	"strings"

	"hemsworth/internal/library"
	"hemsworth/internal/models"
)

// Resolve возвращает упорядоченный план для (неделя, день).
//
// Если для ключа есть хотя бы одна сохранённая строка, возвращаются
// только они: отсортированные по Order и перенумерованные 1..N.
// Иначе план собирается из строк библиотеки с подходящим DayTag в
// исходном порядке. Пустой результат не ошибка: день просто не настроен.
//
// DayTag сравнивается без учёта регистра и крайних пробелов и для
// библиотеки, и для раскладок (исходное приложение сравнивало раскладки
// точно, что теряло сохранённый "day 1" — здесь политика едина).
func Resolve(week, day string, lib library.Library, overrides []models.PlanEntry) []models.PlanEntry {
	var custom []models.PlanEntry
	for _, e := range overrides {
		if e.Week == week && sameDay(e.DayTag, day) {
			custom = append(custom, e)
		}
	}
	if len(custom) > 0 {
		return Renumber(custom)
	}

	var out []models.PlanEntry
	for i, ex := range lib.ForDay(day) {
		out = append(out, models.EntryFromExercise(week, day, i+1, ex))
	}
	return out
}

// Renumber сортирует строки по возрастанию Order (стабильно: равные
// Order сохраняют исходный относительный порядок) и перенумеровывает
// 1..N без пропусков и дубликатов
func Renumber(entries []models.PlanEntry) []models.PlanEntry {
	out := append([]models.PlanEntry{}, entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

func sameDay(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
