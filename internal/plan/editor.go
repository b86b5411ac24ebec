package plan

import (
	"hemsworth/internal/library"
	"hemsworth/internal/models"
)

// ActionKind действие над строкой плана при редактировании раскладки
type ActionKind string

const (
	ActionKeep    ActionKind = "Keep"
	ActionReplace ActionKind = "Replace"
	ActionRemove  ActionKind = "Remove"
)

// EditAction решение пользователя по одной строке плана.
// SetsOverride (если непустой) заменяет схему подходов только в колонке
// активного режима; при Replace остальные метаданные всегда берутся
// заново из библиотеки, а не наследуются от заменяемой строки.
type EditAction struct {
	Kind         ActionKind
	ReplaceWith  string
	NewOrder     int
	SetsOverride string
}

// ApplyEdit применяет решения к строкам плана (позиционно: actions[i]
// относится к current[i], недостающие решения считаются Keep без смены
// порядка). Результат стабильно отсортирован по запрошенному порядку и
// перенумерован 1..N; удалённые строки в нумерации не участвуют.
func ApplyEdit(current []models.PlanEntry, actions []EditAction, master library.Master, mode models.Mode) []models.PlanEntry {
	var edited []models.PlanEntry

	for i, row := range current {
		action := EditAction{Kind: ActionKeep, NewOrder: row.Order}
		if i < len(actions) {
			action = actions[i]
		}

		switch action.Kind {
		case ActionRemove:
			continue

		case ActionReplace:
			if action.ReplaceWith == "" {
				continue
			}
			meta, _ := master.Lookup(action.ReplaceWith)
			meta.Lift = action.ReplaceWith
			next := models.EntryFromExercise(row.Week, row.DayTag, action.NewOrder, meta)
			if action.SetsOverride != "" {
				next = next.WithSets(mode, action.SetsOverride)
			}
			edited = append(edited, next)

		default:
			next := row
			next.Order = action.NewOrder
			if action.SetsOverride != "" {
				next = next.WithSets(mode, action.SetsOverride)
			}
			edited = append(edited, next)
		}
	}

	return Renumber(edited)
}

// DayPick одна позиция конструктора дня с нуля: упражнение плюс
// необязательные правки схем подходов и назначения
type DayPick struct {
	Lift         string
	StandardSets string
	HighVolume   string
	Purpose      string
}

// BuildDay собирает раскладку пустого дня из выбранных упражнений.
// Метаданные берутся из библиотеки, правки пользователя поверх них.
// Порядок строк — порядок выбора.
func BuildDay(week, day string, picks []DayPick, master library.Master) []models.PlanEntry {
	var out []models.PlanEntry
	for i, pick := range picks {
		if pick.Lift == "" {
			continue
		}
		meta, _ := master.Lookup(pick.Lift)
		meta.Lift = pick.Lift
		entry := models.EntryFromExercise(week, day, i+1, meta)
		if pick.StandardSets != "" {
			entry.StandardSets = pick.StandardSets
		}
		if pick.HighVolume != "" {
			entry.HighVolumeSets = pick.HighVolume
		}
		if pick.Purpose != "" {
			entry.Purpose = pick.Purpose
		}
		out = append(out, entry)
	}
	return Renumber(out)
}
