package plan

import (
	"testing"

	"hemsworth/internal/library"
	"hemsworth/internal/models"
)

func testMaster() library.Master {
	return library.Master{
		Week1: testLibrary(),
		Week2: library.NewLibrary([]models.Exercise{
			{DayTag: "Day 1", Lift: "Incline Press", Purpose: "Variation", Region: "Chest", StandardSets: "4×8", HighVolumeSets: "5×10", Rest: "90 sec"},
		}),
	}
}

func TestApplyEdit_KeepReplaceRemove(t *testing.T) {
	current := Resolve(models.Week1, "Day 1", testLibrary(), nil) // Squat, Bench

	got := ApplyEdit(current, []EditAction{
		{Kind: ActionRemove},
		{Kind: ActionReplace, ReplaceWith: "Deadlift", NewOrder: 1},
	}, testMaster(), models.ModeStandard)

	if len(got) != 1 {
		t.Fatalf("ApplyEdit() returned %d entries, want 1", len(got))
	}
	if got[0].Lift != "Deadlift" || got[0].Order != 1 {
		t.Errorf("entry = {%d %s}, want {1 Deadlift}", got[0].Order, got[0].Lift)
	}
	// Replace всегда тянет метаданные заново из библиотеки
	if got[0].StandardSets != "3×5" || got[0].Region != "Back" {
		t.Errorf("replace did not re-pull metadata: %+v", got[0])
	}
	if got[0].Week != models.Week1 || got[0].DayTag != "Day 1" {
		t.Errorf("replace lost the (week, day) key: %+v", got[0])
	}
}

func TestApplyEdit_ReorderStable(t *testing.T) {
	current := Resolve(models.Week1, "Day 1", testLibrary(), nil)

	// Обе строки просят порядок 1: стабильная сортировка сохраняет
	// исходную относительную позицию
	got := ApplyEdit(current, []EditAction{
		{Kind: ActionKeep, NewOrder: 1},
		{Kind: ActionKeep, NewOrder: 1},
	}, testMaster(), models.ModeStandard)

	if got[0].Lift != "Squat" || got[1].Lift != "Bench" {
		t.Errorf("tie order = [%s %s], want [Squat Bench]", got[0].Lift, got[1].Lift)
	}
	if got[0].Order != 1 || got[1].Order != 2 {
		t.Errorf("orders = [%d %d], want contiguous [1 2]", got[0].Order, got[1].Order)
	}
}

func TestApplyEdit_SetsOverrideActiveModeOnly(t *testing.T) {
	current := Resolve(models.Week1, "Day 1", testLibrary(), nil)

	tests := []struct {
		name     string
		mode     models.Mode
		wantStd  string
		wantHigh string
	}{
		{name: "standard mode", mode: models.ModeStandard, wantStd: "6×6", wantHigh: "5×12"},
		{name: "high volume mode", mode: models.ModeHighVolume, wantStd: "3×10", wantHigh: "6×6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyEdit(current[:1], []EditAction{
				{Kind: ActionKeep, NewOrder: 1, SetsOverride: "6×6"},
			}, testMaster(), tt.mode)

			if got[0].StandardSets != tt.wantStd {
				t.Errorf("StandardSets = %q, want %q", got[0].StandardSets, tt.wantStd)
			}
			if got[0].HighVolumeSets != tt.wantHigh {
				t.Errorf("HighVolumeSets = %q, want %q", got[0].HighVolumeSets, tt.wantHigh)
			}
		})
	}
}

func TestApplyEdit_MissingActionsKeepRows(t *testing.T) {
	current := Resolve(models.Week1, "Day 1", testLibrary(), nil)
	got := ApplyEdit(current, nil, testMaster(), models.ModeStandard)
	if len(got) != len(current) {
		t.Fatalf("ApplyEdit() dropped rows without actions: %d, want %d", len(got), len(current))
	}
}

func TestBuildDay(t *testing.T) {
	got := BuildDay(models.Week2, "Day 4", []DayPick{
		{Lift: "Incline Press"},
		{Lift: "Squat", StandardSets: "5×5", Purpose: "Main lift"},
		{Lift: ""}, // пустая позиция пропускается
	}, testMaster())

	if len(got) != 2 {
		t.Fatalf("BuildDay() returned %d entries, want 2", len(got))
	}
	// Метаданные из недели 2 (Lookup идёт: неделя 1, потом неделя 2)
	if got[0].Lift != "Incline Press" || got[0].Rest != "90 sec" {
		t.Errorf("entry 0 = %+v, want Incline Press metadata from week 2", got[0])
	}
	if got[1].StandardSets != "5×5" || got[1].Purpose != "Main lift" {
		t.Errorf("user edits not applied: %+v", got[1])
	}
	if got[1].Region != "Legs" {
		t.Errorf("library metadata lost on edited pick: %+v", got[1])
	}
	if got[0].Order != 1 || got[1].Order != 2 {
		t.Errorf("orders = [%d %d], want [1 2]", got[0].Order, got[1].Order)
	}
	if got[0].Week != models.Week2 || got[0].DayTag != "Day 4" {
		t.Errorf("entry keyed wrong: %+v", got[0])
	}
}
