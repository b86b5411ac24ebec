package models

// Filter фильтр дашборда прогресса; пустое значение = "All"
type Filter struct {
	Week string
	Day  string
	Lift string
}

// Matches проверяет, проходит ли запись журнала фильтр
func (f Filter) Matches(e LogEntry) bool {
	if f.Week != "" && e.Week != f.Week {
		return false
	}
	if f.Day != "" && e.DayTag != f.Day {
		return false
	}
	if f.Lift != "" && e.Lift != f.Lift {
		return false
	}
	return true
}

// TrendPoint суммарный объём журнала за один момент времени
type TrendPoint struct {
	Date   string
	Volume float64
}

// PersonalRecord личные рекорды по упражнению. Максимумы считаются
// независимо друг от друга и могут приходить из разных серий.
type PersonalRecord struct {
	Lift         string
	MaxWeight    float64
	MaxReps      int
	MaxVolume    float64
	Estimated1PM float64
}

// WeeklySummaryRow суммы веса/повторов/объёма за (ISO-неделя, день)
type WeeklySummaryRow struct {
	ISOWeek     int
	DayTag      string
	TotalWeight float64
	TotalReps   int
	TotalVolume float64
}

// HeaviestSet строка таблицы "самые тяжёлые подъёмы" в PDF-отчёте
type HeaviestSet struct {
	Date   string
	Lift   string
	Weight float64
	Reps   int
}

// VolumeDay строка таблицы "дни с наибольшим объёмом" в PDF-отчёте
type VolumeDay struct {
	Date   string
	Volume float64
}
