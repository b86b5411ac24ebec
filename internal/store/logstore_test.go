package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"hemsworth/internal/models"
)

func newTestLogStore(t *testing.T) *LogStore {
	t.Helper()
	dir := t.TempDir()
	return NewLogStore(filepath.Join(dir, "user_logs.csv"), filepath.Join(dir, "undo_last_save.csv"))
}

func entry(lift string, weight float64, reps int) models.LogEntry {
	return models.LogEntry{
		Date:   "2024-01-01 10:00",
		Week:   "1",
		DayTag: "Day 1",
		Lift:   lift,
		Weight: weight,
		Reps:   reps,
		Mode:   string(models.ModeStandard),
	}
}

func TestLogStore_AppendPersists(t *testing.T) {
	s := newTestLogStore(t)

	logs, err := s.Append(nil, entry("Squat", 200, 5))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	logs, err = s.Append(logs, entry("Bench", 135, 8))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(reloaded, logs) {
		t.Errorf("reload mismatch:\ngot  %+v\nwant %+v", reloaded, logs)
	}
}

func TestLogStore_LoadMissingFile(t *testing.T) {
	s := newTestLogStore(t)
	logs, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("Load() on missing file = %d entries, want 0", len(logs))
	}
}

func TestLogStore_BulkUndoRoundTrip(t *testing.T) {
	s := newTestLogStore(t)

	logs, err := s.Append(nil, entry("Squat", 185, 5))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	before := append([]models.LogEntry{}, logs...)

	batch := []models.LogEntry{entry("Bench", 135, 8), entry("Row", 95, 10)}
	logs, err = s.AppendBulk(logs, batch)
	if err != nil {
		t.Fatalf("AppendBulk() error = %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("after bulk: %d entries, want 3", len(logs))
	}

	logs, err = s.UndoLastBulk(logs)
	if err != nil {
		t.Fatalf("UndoLastBulk() error = %v", err)
	}
	if !reflect.DeepEqual(logs, before) {
		t.Errorf("undo did not restore prior log:\ngot  %+v\nwant %+v", logs, before)
	}

	// буфер потреблён: повторный откат невозможен
	if _, err := s.UndoLastBulk(logs); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("second undo error = %v, want ErrNothingToUndo", err)
	}
}

func TestLogStore_UndoWithoutBuffer(t *testing.T) {
	s := newTestLogStore(t)
	if _, err := s.UndoLastBulk(nil); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("UndoLastBulk() error = %v, want ErrNothingToUndo", err)
	}
}

func TestLogStore_SecondBulkOverwritesBuffer(t *testing.T) {
	s := newTestLogStore(t)

	logs, err := s.AppendBulk(nil, []models.LogEntry{entry("Squat", 200, 5)})
	if err != nil {
		t.Fatalf("AppendBulk() error = %v", err)
	}
	logs, err = s.AppendBulk(logs, []models.LogEntry{entry("Bench", 135, 8)})
	if err != nil {
		t.Fatalf("AppendBulk() error = %v", err)
	}

	logs, err = s.UndoLastBulk(logs)
	if err != nil {
		t.Fatalf("UndoLastBulk() error = %v", err)
	}
	// откатился только второй bulk; первый уже не откатить
	if len(logs) != 1 || logs[0].Lift != "Squat" {
		t.Fatalf("after undo: %+v, want only Squat entry", logs)
	}
	if _, err := s.UndoLastBulk(logs); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("undo is not single-level: error = %v, want ErrNothingToUndo", err)
	}
}

func TestLogStore_UndoRemovesDuplicateAtMostOnce(t *testing.T) {
	s := newTestLogStore(t)

	dup := entry("Squat", 200, 5)
	logs, err := s.Append(nil, dup)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	logs, err = s.AppendBulk(logs, []models.LogEntry{dup})
	if err != nil {
		t.Fatalf("AppendBulk() error = %v", err)
	}

	logs, err = s.UndoLastBulk(logs)
	if err != nil {
		t.Fatalf("UndoLastBulk() error = %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("after undo: %d entries, want 1 (each buffered row removes one match)", len(logs))
	}
}

func TestLogStore_ClearKeepsBackup(t *testing.T) {
	s := newTestLogStore(t)

	if _, err := s.Append(nil, entry("Squat", 200, 5)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	logs, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("Clear() = %d entries, want 0", len(logs))
	}

	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(reloaded) != 0 {
		t.Errorf("log file not emptied: %d entries", len(reloaded))
	}

	files, err := os.ReadDir(filepath.Dir(s.path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	backups := 0
	for _, f := range files {
		if strings.Contains(f.Name(), "_backup_") {
			backups++
		}
	}
	if backups != 1 {
		t.Errorf("backup files = %d, want 1", backups)
	}
}

func TestLogStore_MalformedNumericCoercion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_logs.csv")

	// колонки перемешаны, Notes отсутствует, числа битые
	raw := "Week,Date,Lift / Exercise,Weight (lbs),Reps,Mode,DayTag\n" +
		"1,2024-01-01 10:00,Squat,heavy,five,Standard,Day 1\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := NewLogStore(path, filepath.Join(dir, "undo.csv"))
	logs, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Load() = %d entries, want 1", len(logs))
	}
	got := logs[0]
	if got.Weight != 0 || got.Reps != 0 {
		t.Errorf("malformed numerics = %v/%d, want coerced to 0/0", got.Weight, got.Reps)
	}
	if got.Lift != "Squat" || got.DayTag != "Day 1" || got.Notes != "" {
		t.Errorf("column reorder/synthesis failed: %+v", got)
	}
}
