// Package store реализует файловые хранилища приложения поверх CSV.
// Каждая публичная операция принимает текущий снимок данных и возвращает
// следующий; состояние между вызовами живёт только в файлах. Запись
// всегда перезаписывает файл целиком (load-merge-save), поэтому при
// нескольких одновременных сессиях побеждает последний писатель —
// известное ограничение однопользовательского приложения.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// readTable читает CSV и возвращает строки в каноническом порядке колонок.
// Отсутствующий файл не ошибка: возвращается пустая таблица нужной формы.
// Отсутствующие колонки синтезируются пустыми, лишние игнорируются.
func readTable(path string, columns []string) ([][]string, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
	}

	index := make(map[string]int)
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
		}

		row := make([]string, len(columns))
		for i, col := range columns {
			if j, ok := index[col]; ok && j < len(record) {
				row[i] = record[j]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// writeTable перезаписывает файл целиком: заголовок плюс строки
func writeTable(path string, columns []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка записи %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// backupFile откладывает копию файла перед разрушительной операцией.
// Имя копии получает короткий uuid-суффикс, чтобы копии не затирали
// друг друга. Отсутствующий файл пропускается молча.
func backupFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	backup := fmt.Sprintf("%s_backup_%s%s", base, uuid.New().String()[:8], ext)

	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", err
	}
	return backup, nil
}
