package models

// Mode определяет режим тренировки (какая колонка подходов активна)
type Mode string

const (
	ModeStandard   Mode = "Standard"
	ModeHighVolume Mode = "Hemsworth High Volume"
)

// Номера тренировочных недель (двухнедельная система: основная + вариация)
const (
	Week1 = "1"
	Week2 = "2"
)

// DayTags список тренировочных дней в порядке вкладок
var DayTags = []string{"Day 1", "Day 2", "Day 3", "Day 4", "Day 5", "Day 6", "Core"}

// BlockGroups допустимые группы блоков для конструктора блоков
var BlockGroups = []string{"A", "B", "C", "D", "E"}

// Exercise строка библиотеки упражнений (каноническая, только чтение)
type Exercise struct {
	DayTag         string
	Lift           string
	Purpose        string
	Region         string
	StandardSets   string
	HighVolumeSets string
	Rest           string
}

// PlanEntry строка эффективного плана дня (из библиотеки или пользовательского слоя)
type PlanEntry struct {
	Week           string
	DayTag         string
	Order          int
	Lift           string
	Purpose        string
	Region         string
	StandardSets   string
	HighVolumeSets string
	Rest           string
}

// Sets возвращает схему подходов для выбранного режима
func (p PlanEntry) Sets(mode Mode) string {
	if mode == ModeHighVolume {
		return p.HighVolumeSets
	}
	return p.StandardSets
}

// WithSets записывает схему подходов в колонку выбранного режима
func (p PlanEntry) WithSets(mode Mode, sets string) PlanEntry {
	if mode == ModeHighVolume {
		p.HighVolumeSets = sets
	} else {
		p.StandardSets = sets
	}
	return p
}

// EntryFromExercise собирает строку плана из строки библиотеки
func EntryFromExercise(week, day string, order int, ex Exercise) PlanEntry {
	return PlanEntry{
		Week:           week,
		DayTag:         day,
		Order:          order,
		Lift:           ex.Lift,
		Purpose:        ex.Purpose,
		Region:         ex.Region,
		StandardSets:   ex.StandardSets,
		HighVolumeSets: ex.HighVolumeSets,
		Rest:           ex.Rest,
	}
}

// CustomBlock запись конструктора блоков (A..E), чисто аддитивная
type CustomBlock struct {
	Lift       string
	BlockGroup string
	DayTag     string
	Purpose    string
}
