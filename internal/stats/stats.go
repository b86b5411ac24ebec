// Package stats считает производные показатели журнала: тренд объёма,
// личные рекорды и недельные сводки. Все функции чистые и пересчитывают
// результат из полного журнала на каждый вызов; группы без строк в
// выводе отсутствуют (нулями ничего не заполняется).
package stats

import (
	"sort"
	"time"

	"hemsworth/internal/models"
)

// Apply возвращает записи журнала, проходящие фильтр.
// Фильтр по значению без единого совпадения даёт пустой срез, не ошибку.
func Apply(entries []models.LogEntry, f models.Filter) []models.LogEntry {
	var out []models.LogEntry
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Trend суммирует объём по моментам журнала в хронологическом порядке.
// Нечитаемые даты группируются по исходной строке и идут после читаемых.
func Trend(entries []models.LogEntry) []models.TrendPoint {
	byDate := make(map[string]float64)
	for _, e := range entries {
		byDate[e.Date] += e.Volume()
	}

	points := make([]models.TrendPoint, 0, len(byDate))
	for date, volume := range byDate {
		points = append(points, models.TrendPoint{Date: date, Volume: volume})
	}

	sort.Slice(points, func(i, j int) bool {
		ti, iok := parse(points[i].Date)
		tj, jok := parse(points[j].Date)
		if iok != jok {
			return iok
		}
		if iok {
			return ti.Before(tj)
		}
		return points[i].Date < points[j].Date
	})
	return points
}

// PersonalRecords считает по каждому упражнению независимые максимумы
// веса, повторов и объёма (они могут приходить из разных серий), плюс
// оценку 1ПМ по лучшей серии. Сортировка по названию упражнения.
func PersonalRecords(entries []models.LogEntry) []models.PersonalRecord {
	byLift := make(map[string]*models.PersonalRecord)
	for _, e := range entries {
		pr, ok := byLift[e.Lift]
		if !ok {
			pr = &models.PersonalRecord{Lift: e.Lift}
			byLift[e.Lift] = pr
		}
		if e.Weight > pr.MaxWeight {
			pr.MaxWeight = e.Weight
		}
		if e.Reps > pr.MaxReps {
			pr.MaxReps = e.Reps
		}
		if v := e.Volume(); v > pr.MaxVolume {
			pr.MaxVolume = v
		}
		if est := Estimate1PM(e.Weight, e.Reps); est > pr.Estimated1PM {
			pr.Estimated1PM = est
		}
	}

	out := make([]models.PersonalRecord, 0, len(byLift))
	for _, pr := range byLift {
		out = append(out, *pr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lift < out[j].Lift })
	return out
}

// WeeklySummary суммирует вес, повторы и объём по (ISO-неделя, день).
// Записи с нечитаемой датой в сводку не попадают (неделю не определить).
func WeeklySummary(entries []models.LogEntry) []models.WeeklySummaryRow {
	type key struct {
		week int
		day  string
	}
	byKey := make(map[key]*models.WeeklySummaryRow)
	for _, e := range entries {
		t, ok := e.ParsedDate()
		if !ok {
			continue
		}
		_, isoWeek := t.ISOWeek()
		k := key{week: isoWeek, day: e.DayTag}
		row, exists := byKey[k]
		if !exists {
			row = &models.WeeklySummaryRow{ISOWeek: isoWeek, DayTag: e.DayTag}
			byKey[k] = row
		}
		row.TotalWeight += e.Weight
		row.TotalReps += e.Reps
		row.TotalVolume += e.Volume()
	}

	out := make([]models.WeeklySummaryRow, 0, len(byKey))
	for _, row := range byKey {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ISOWeek != out[j].ISOWeek {
			return out[i].ISOWeek < out[j].ISOWeek
		}
		return out[i].DayTag < out[j].DayTag
	})
	return out
}

// TopHeaviestSets возвращает n самых тяжёлых серий журнала (для отчёта)
func TopHeaviestSets(entries []models.LogEntry, n int) []models.HeaviestSet {
	sorted := append([]models.LogEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]models.HeaviestSet, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, models.HeaviestSet{Date: e.Date, Lift: e.Lift, Weight: e.Weight, Reps: e.Reps})
	}
	return out
}

// TopVolumeDays возвращает n моментов журнала с наибольшим объёмом
func TopVolumeDays(entries []models.LogEntry, n int) []models.VolumeDay {
	trend := Trend(entries)
	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].Volume > trend[j].Volume
	})
	if len(trend) > n {
		trend = trend[:n]
	}
	out := make([]models.VolumeDay, 0, len(trend))
	for _, p := range trend {
		out = append(out, models.VolumeDay{Date: p.Date, Volume: p.Volume})
	}
	return out
}

func parse(date string) (time.Time, bool) {
	e := models.LogEntry{Date: date}
	return e.ParsedDate()
}
