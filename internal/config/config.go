package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Config содержит конфигурацию приложения
type Config struct {
	// Каталог данных, создаётся при первом запуске
	DataDir string

	// Пути к рабочим файлам
	LibraryWeek1Path string // Hemsworth_Lift_Library.xlsx
	LibraryWeek2Path string // Hemsworth_Lift_Library_Week2.xlsx
	LogPath          string // user_logs.csv
	CustomDaysPath   string // Hemsworth_Custom_Days.csv
	UndoPath         string // undo_last_save.csv
	BlocksPath       string // custom_blocks.csv

	// Каталог для отчётов (Excel/PDF)
	ExportDir string
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() *Config {
	env, err := loadEnvFile(".env")
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	dataDir := getEnv("HEMSWORTH_DATA_DIR", "data")
	exportDir := getEnv("HEMSWORTH_EXPORT_DIR", dataDir)

	return New(dataDir, exportDir)
}

// New собирает конфигурацию с фиксированными путями внутри dataDir
func New(dataDir, exportDir string) *Config {
	return &Config{
		DataDir:          dataDir,
		LibraryWeek1Path: filepath.Join(dataDir, "Hemsworth_Lift_Library.xlsx"),
		LibraryWeek2Path: filepath.Join(dataDir, "Hemsworth_Lift_Library_Week2.xlsx"),
		LogPath:          filepath.Join(dataDir, "user_logs.csv"),
		CustomDaysPath:   filepath.Join(dataDir, "Hemsworth_Custom_Days.csv"),
		UndoPath:         filepath.Join(dataDir, "undo_last_save.csv"),
		BlocksPath:       filepath.Join(dataDir, "custom_blocks.csv"),
		ExportDir:        exportDir,
	}
}

// EnsureDataDir создаёт каталоги данных и отчётов, если их нет
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.ExportDir, 0755)
}

// loadEnvFile читает .env файл
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
