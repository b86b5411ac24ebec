package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"hemsworth/internal/models"
)

// ErrNothingToUndo возвращается, когда буфер отката пуст или отсутствует
var ErrNothingToUndo = errors.New("нет данных для отката")

// LogStore журнал записанных серий (append-only) с одноуровневым
// откатом последнего bulk-сохранения
type LogStore struct {
	path     string
	undoPath string
}

// NewLogStore создаёт хранилище журнала
func NewLogStore(path, undoPath string) *LogStore {
	return &LogStore{path: path, undoPath: undoPath}
}

// Load читает журнал; отсутствующий файл даёт пустой журнал
func (s *LogStore) Load() ([]models.LogEntry, error) {
	rows, err := readTable(s.path, models.LogColumns)
	if err != nil {
		return nil, err
	}
	return decodeLogRows(rows), nil
}

// Append добавляет одну запись и сразу сохраняет журнал
func (s *LogStore) Append(entries []models.LogEntry, e models.LogEntry) ([]models.LogEntry, error) {
	next := append(append([]models.LogEntry{}, entries...), e)
	if err := s.persist(next); err != nil {
		return entries, err
	}
	return next, nil
}

// AppendBulk добавляет все записи одним действием и безусловно
// перезаписывает буфер отката именно этими строками. Предыдущий
// несъеденный буфер теряется: откат одноуровневый, не стек.
func (s *LogStore) AppendBulk(entries []models.LogEntry, batch []models.LogEntry) ([]models.LogEntry, error) {
	if len(batch) == 0 {
		return entries, nil
	}
	next := append(append([]models.LogEntry{}, entries...), batch...)
	if err := s.persist(next); err != nil {
		return entries, err
	}
	if err := writeTable(s.undoPath, models.LogColumns, encodeLogRows(batch)); err != nil {
		return next, fmt.Errorf("журнал сохранён, но буфер отката не записан: %w", err)
	}
	return next, nil
}

// UndoLastBulk убирает из журнала строки последнего bulk-сохранения и
// очищает буфер. Сопоставление по полному равенству всех полей: каждая
// строка буфера снимает не больше одной строки журнала, поэтому при
// полных дубликатах откат может снять не ту копию — документированное
// ограничение исходного поведения.
func (s *LogStore) UndoLastBulk(entries []models.LogEntry) ([]models.LogEntry, error) {
	rows, err := readTable(s.undoPath, models.LogColumns)
	if err != nil {
		return entries, err
	}
	buffer := decodeLogRows(rows)
	if len(buffer) == 0 {
		return entries, ErrNothingToUndo
	}

	remaining := make([]models.LogEntry, 0, len(entries))
	pending := append([]models.LogEntry{}, buffer...)

	for _, e := range entries {
		matched := -1
		for i, b := range pending {
			if e.Equal(b) {
				matched = i
				break
			}
		}
		if matched >= 0 {
			pending = append(pending[:matched], pending[matched+1:]...)
			continue
		}
		remaining = append(remaining, e)
	}

	if err := s.persist(remaining); err != nil {
		return entries, err
	}
	if err := os.Remove(s.undoPath); err != nil && !os.IsNotExist(err) {
		return remaining, err
	}
	return remaining, nil
}

// Clear заменяет журнал пустой таблицей той же формы, предварительно
// откладывая резервную копию
func (s *LogStore) Clear() ([]models.LogEntry, error) {
	if backup, err := backupFile(s.path); err != nil {
		return nil, err
	} else if backup != "" {
		log.Printf("💾 Резервная копия журнала: %s", backup)
	}
	if err := s.persist(nil); err != nil {
		return nil, err
	}
	return nil, nil
}

// ClearUndo удаляет буфер отката
func (s *LogStore) ClearUndo() error {
	if err := os.Remove(s.undoPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LogStore) persist(entries []models.LogEntry) error {
	return writeTable(s.path, models.LogColumns, encodeLogRows(entries))
}

func encodeLogRows(entries []models.LogEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date,
			e.Week,
			e.DayTag,
			e.Lift,
			formatWeight(e.Weight),
			strconv.Itoa(e.Reps),
			e.Notes,
			e.Mode,
		})
	}
	return rows
}

func decodeLogRows(rows [][]string) []models.LogEntry {
	entries := make([]models.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.LogEntry{
			Date:   row[0],
			Week:   row[1],
			DayTag: row[2],
			Lift:   row[3],
			Weight: parseFloatDefault(row[4], 0),
			Reps:   parseIntDefault(row[5], 0),
			Notes:  row[6],
			Mode:   row[7],
		})
	}
	return entries
}

// formatWeight пишет вес без лишних нулей (80, 22.5)
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// parseFloatDefault нечисловое значение приводит к значению по умолчанию
func parseFloatDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(s, ",", ".", 1)), 64)
	if err != nil {
		return def
	}
	return v
}

// parseIntDefault нечисловое значение приводит к значению по умолчанию
func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
