package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"hemsworth/internal/config"
	"hemsworth/internal/export"
	"hemsworth/internal/library"
	"hemsworth/internal/models"
	"hemsworth/internal/plan"
	"hemsworth/internal/stats"
	"hemsworth/internal/store"
)

// app держит снимки данных текущей сессии. Каждое действие меню читает
// снимок, применяет чистое преобразование и сохраняет следующий снимок.
type app struct {
	cfg    *config.Config
	master library.Master

	logs      *store.LogStore
	overrides *store.OverrideStore
	blocks    *store.BlockStore

	logEntries   []models.LogEntry
	overrideRows []models.PlanEntry
	blockRows    []models.CustomBlock

	week string
	mode models.Mode

	reloadLibrary atomic.Bool
}

func main() {
	dataDir := flag.String("data", "", "Каталог данных (по умолчанию из окружения или ./data)")
	exportDir := flag.String("export", "", "Каталог отчётов (по умолчанию каталог данных)")
	watch := flag.Bool("watch", false, "Перечитывать библиотеку при изменении .xlsx файлов")
	flag.Parse()

	cfg := config.Load()
	if *dataDir != "" {
		out := *exportDir
		if out == "" {
			out = *dataDir
		}
		cfg = config.New(*dataDir, out)
	} else if *exportDir != "" {
		cfg = config.New(cfg.DataDir, *exportDir)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Ошибка создания каталога данных: %v", err)
	}

	master, err := library.LoadMaster(cfg.LibraryWeek1Path, cfg.LibraryWeek2Path)
	if err != nil {
		// Без колонки DayTag план не собрать ни для одного дня
		log.Fatalf("Ошибка загрузки библиотеки: %v", err)
	}

	a := &app{
		cfg:       cfg,
		master:    master,
		logs:      store.NewLogStore(cfg.LogPath, cfg.UndoPath),
		overrides: store.NewOverrideStore(cfg.CustomDaysPath),
		blocks:    store.NewBlockStore(cfg.BlocksPath),
		week:      models.Week1,
		mode:      models.ModeStandard,
	}

	if a.logEntries, err = a.logs.Load(); err != nil {
		log.Fatalf("Ошибка загрузки журнала: %v", err)
	}
	if a.overrideRows, err = a.overrides.Load(); err != nil {
		log.Fatalf("Ошибка загрузки раскладок: %v", err)
	}
	if a.blockRows, err = a.blocks.Load(); err != nil {
		log.Fatalf("Ошибка загрузки блоков: %v", err)
	}

	if *watch {
		w, err := library.NewWatcher(cfg.LibraryWeek1Path, cfg.LibraryWeek2Path)
		if err != nil {
			log.Printf("⚠️ Наблюдатель не запущен: %v", err)
		} else {
			w.Start()
			defer w.Stop()
			go func() {
				for range w.Changes() {
					a.reloadLibrary.Store(true)
				}
			}()
		}
	}

	fmt.Println("🦸 Hemsworth Training System")
	fmt.Printf("Каталог данных: %s\n", cfg.DataDir)

	scanner := bufio.NewScanner(os.Stdin)
	a.run(scanner)
}

// run главный цикл меню
func (a *app) run(scanner *bufio.Scanner) {
	for {
		a.maybeReloadLibrary()

		fmt.Printf("\n=== Неделя %s | Режим: %s ===\n", a.week, a.mode)
		fmt.Println("1. Тренировочный день")
		fmt.Println("2. Прогресс и рекорды")
		fmt.Println("3. Экспорт отчёта")
		fmt.Println("4. Конструктор блоков")
		fmt.Println("5. Сменить неделю/режим")
		fmt.Println("6. Сброс данных")
		fmt.Println("0. Выход")

		switch prompt(scanner, "Выбор") {
		case "1":
			a.dayMenu(scanner)
		case "2":
			a.progressMenu(scanner)
		case "3":
			a.exportMenu(scanner)
		case "4":
			a.blockMenu(scanner)
		case "5":
			a.selectWeekAndMode(scanner)
		case "6":
			a.resetMenu(scanner)
		case "0", "":
			fmt.Println("До встречи на тренировке! 💪")
			return
		}
	}
}

// maybeReloadLibrary перечитывает библиотеку, если наблюдатель заметил
// изменения .xlsx файлов
func (a *app) maybeReloadLibrary() {
	if !a.reloadLibrary.Swap(false) {
		return
	}
	master, err := library.LoadMaster(a.cfg.LibraryWeek1Path, a.cfg.LibraryWeek2Path)
	if err != nil {
		log.Printf("⚠️ Перечитать библиотеку не удалось: %v", err)
		return
	}
	a.master = master
	log.Printf("📘 Библиотека перечитана")
}

func (a *app) selectWeekAndMode(scanner *bufio.Scanner) {
	if prompt(scanner, "Неделя [1/2]") == "2" {
		a.week = models.Week2
	} else {
		a.week = models.Week1
	}
	if prompt(scanner, "Режим: 1=Standard, 2=Hemsworth High Volume") == "2" {
		a.mode = models.ModeHighVolume
	} else {
		a.mode = models.ModeStandard
	}
}

// dayMenu работа с одним тренировочным днём
func (a *app) dayMenu(scanner *bufio.Scanner) {
	for i, d := range models.DayTags {
		fmt.Printf("%d. %s\n", i+1, d)
	}
	idx := promptInt(scanner, "День", 0)
	if idx < 1 || idx > len(models.DayTags) {
		return
	}
	day := models.DayTags[idx-1]

	for {
		current := plan.Resolve(a.week, day, a.master.ForWeek(a.week), a.overrideRows)
		a.printPlan(day, current)

		fmt.Println("1. Записать серию")
		fmt.Println("2. Сохранить весь день (bulk)")
		fmt.Println("3. Откатить последнее bulk-сохранение")
		fmt.Println("4. Редактировать раскладку")
		fmt.Println("5. Собрать день с нуля")
		fmt.Println("6. Сбросить день к библиотеке")
		fmt.Println("0. Назад")

		switch prompt(scanner, "Выбор") {
		case "1":
			a.logSet(scanner, day, current)
		case "2":
			a.logBulk(scanner, day, current)
		case "3":
			a.undoBulk()
		case "4":
			a.editLayout(scanner, day, current)
		case "5":
			a.buildDay(scanner, day)
		case "6":
			a.resetDay(day)
		case "0", "":
			return
		}
	}
}

// printPlan печатает эффективный план дня
func (a *app) printPlan(day string, current []models.PlanEntry) {
	fmt.Printf("\n🏋️ %s — Неделя %s\n", day, a.week)
	if len(current) == 0 {
		fmt.Println("День не настроен: в библиотеке нет строк, раскладка не сохранена.")
		return
	}
	for _, e := range current {
		fmt.Printf("%2d. %-35s %-14s отдых: %s\n", e.Order, e.Lift, e.Sets(a.mode), e.Rest)
		if e.Purpose != "" || e.Region != "" {
			fmt.Printf("    %s | %s\n", e.Purpose, e.Region)
		}
	}
	recent := stats.Apply(a.logEntries, models.Filter{Week: a.week, Day: day})
	if n := len(recent); n > 0 {
		fmt.Printf("Записей в журнале для этого дня/недели: %d\n", n)
	}
}

// logSet записывает одну серию (LogSet)
func (a *app) logSet(scanner *bufio.Scanner, day string, current []models.PlanEntry) {
	if len(current) == 0 {
		return
	}
	idx := promptInt(scanner, "Номер упражнения", 0)
	if idx < 1 || idx > len(current) {
		fmt.Println("Нет такой строки плана.")
		return
	}
	row := current[idx-1]

	entry := models.LogEntry{
		Date:   time.Now().Format(models.DateLayout),
		Week:   a.week,
		DayTag: day,
		Lift:   row.Lift,
		Weight: promptFloat(scanner, "Вес (lbs)", 0),
		Reps:   promptInt(scanner, "Повторы", 0),
		Notes:  prompt(scanner, "Заметки"),
		Mode:   string(a.mode),
	}

	next, err := a.logs.Append(a.logEntries, entry)
	if err != nil {
		log.Printf("Ошибка записи: %v", err)
		return
	}
	a.logEntries = next
	fmt.Printf("💾 Записано: %s %sx%d\n", entry.Lift, formatWeight(entry.Weight), entry.Reps)
}

// logBulk собирает серии по каждому упражнению дня и сохраняет их одним
// действием (LogBulk); буфер отката получает ровно эти строки
func (a *app) logBulk(scanner *bufio.Scanner, day string, current []models.PlanEntry) {
	if len(current) == 0 {
		return
	}
	now := time.Now().Format(models.DateLayout)
	var batch []models.LogEntry

	for _, row := range current {
		fmt.Printf("\n%d. %s (%s)\n", row.Order, row.Lift, row.Sets(a.mode))
		batch = append(batch, models.LogEntry{
			Date:   now,
			Week:   a.week,
			DayTag: day,
			Lift:   row.Lift,
			Weight: promptFloat(scanner, "Вес (lbs)", 0),
			Reps:   promptInt(scanner, "Повторы", 0),
			Notes:  prompt(scanner, "Заметки"),
			Mode:   string(a.mode),
		})
	}

	next, err := a.logs.AppendBulk(a.logEntries, batch)
	if err != nil {
		log.Printf("Ошибка bulk-сохранения: %v", err)
		return
	}
	a.logEntries = next
	fmt.Printf("💾 Сохранено записей: %d\n", len(batch))
}

// undoBulk откатывает последнее bulk-сохранение (UndoBulk)
func (a *app) undoBulk() {
	next, err := a.logs.UndoLastBulk(a.logEntries)
	if errors.Is(err, store.ErrNothingToUndo) {
		fmt.Println("Откатывать нечего.")
		return
	}
	if err != nil {
		log.Printf("Ошибка отката: %v", err)
		return
	}
	a.logEntries = next
	fmt.Println("↩️ Последнее bulk-сохранение откачено.")
}

// editLayout правка раскладки дня: Keep / Replace / Remove / порядок /
// схема подходов для активного режима (SaveDayLayout)
func (a *app) editLayout(scanner *bufio.Scanner, day string, current []models.PlanEntry) {
	if len(current) == 0 {
		fmt.Println("День пуст — используйте сборку с нуля.")
		return
	}
	lifts := a.master.AllLifts()
	actions := make([]plan.EditAction, 0, len(current))

	for _, row := range current {
		fmt.Printf("\n%d. %s (%s)\n", row.Order, row.Lift, row.Sets(a.mode))
		action := plan.EditAction{Kind: plan.ActionKeep, NewOrder: row.Order}

		switch strings.ToLower(prompt(scanner, "Действие [k=оставить, r=заменить, x=удалить]")) {
		case "x":
			action.Kind = plan.ActionRemove
			actions = append(actions, action)
			continue
		case "r":
			action.Kind = plan.ActionReplace
			action.ReplaceWith = pickLift(scanner, lifts)
			if action.ReplaceWith == "" {
				action.Kind = plan.ActionKeep
			}
		}

		action.NewOrder = promptInt(scanner, "Порядок", row.Order)
		action.SetsOverride = prompt(scanner, "Схема подходов (пусто = как в библиотеке)")
		actions = append(actions, action)
	}

	layout := plan.ApplyEdit(current, actions, a.master, a.mode)
	next, err := a.overrides.SaveDay(a.overrideRows, a.week, day, layout)
	if err != nil {
		log.Printf("Ошибка сохранения раскладки: %v", err)
		return
	}
	a.overrideRows = next
	fmt.Printf("💾 Раскладка %s (неделя %s) сохранена: %d строк\n", day, a.week, len(layout))
}

// buildDay сборка пустого дня с нуля
func (a *app) buildDay(scanner *bufio.Scanner, day string) {
	lifts := a.master.AllLifts()
	if len(lifts) == 0 {
		fmt.Println("Библиотека пуста, выбирать не из чего.")
		return
	}

	count := promptInt(scanner, "Сколько упражнений добавить", 5)
	var picks []plan.DayPick
	for i := 1; i <= count; i++ {
		fmt.Printf("\nУпражнение %d из %d\n", i, count)
		lift := pickLift(scanner, lifts)
		if lift == "" {
			continue
		}
		meta, _ := a.master.Lookup(lift)
		picks = append(picks, plan.DayPick{
			Lift:         lift,
			StandardSets: promptDefault(scanner, "Standard Sets×Reps", meta.StandardSets),
			HighVolume:   promptDefault(scanner, "Hemsworth Sets×Reps", meta.HighVolumeSets),
			Purpose:      promptDefault(scanner, "Purpose / Role", meta.Purpose),
		})
	}

	layout := plan.BuildDay(a.week, day, picks, a.master)
	if len(layout) == 0 {
		return
	}
	next, err := a.overrides.SaveDay(a.overrideRows, a.week, day, layout)
	if err != nil {
		log.Printf("Ошибка сохранения раскладки: %v", err)
		return
	}
	a.overrideRows = next
	fmt.Printf("💾 Новая раскладка %s (неделя %s) сохранена.\n", day, a.week)
}

// resetDay возврат дня к библиотечному плану (ResetDay)
func (a *app) resetDay(day string) {
	next, err := a.overrides.ResetDay(a.overrideRows, a.week, day)
	if err != nil {
		log.Printf("Ошибка сброса дня: %v", err)
		return
	}
	a.overrideRows = next
	fmt.Printf("↩️ %s (неделя %s) сброшен к библиотеке.\n", day, a.week)
}

// progressMenu дашборд прогресса с фильтрами
func (a *app) progressMenu(scanner *bufio.Scanner) {
	if len(a.logEntries) == 0 {
		fmt.Println("Журнал пуст — сначала запишите серии.")
		return
	}

	f := models.Filter{
		Week: prompt(scanner, "Фильтр по неделе [1/2, пусто = все]"),
		Day:  prompt(scanner, "Фильтр по дню [пусто = все]"),
		Lift: prompt(scanner, "Фильтр по упражнению [пусто = все]"),
	}
	filtered := stats.Apply(a.logEntries, f)

	fmt.Println("\n📈 Тренд объёма")
	for _, p := range stats.Trend(filtered) {
		fmt.Printf("%-16s %10s\n", p.Date, formatWeight(p.Volume))
	}

	fmt.Println("\n🏆 Личные рекорды")
	for _, pr := range stats.PersonalRecords(filtered) {
		fmt.Printf("%-35s вес: %-8s повторы: %-4d объём: %-10s 1ПМ~%s\n",
			pr.Lift, formatWeight(pr.MaxWeight), pr.MaxReps,
			formatWeight(pr.MaxVolume), formatWeight(pr.Estimated1PM))
	}

	fmt.Println("\n📅 Недельная сводка (ISO)")
	for _, w := range stats.WeeklySummary(filtered) {
		fmt.Printf("неделя %2d  %-8s вес: %-10s повторы: %-5d объём: %s\n",
			w.ISOWeek, w.DayTag, formatWeight(w.TotalWeight), w.TotalReps, formatWeight(w.TotalVolume))
	}
}

// exportMenu экспорт отчётов (Export)
func (a *app) exportMenu(scanner *bufio.Scanner) {
	prs := stats.PersonalRecords(a.logEntries)
	weekly := stats.WeeklySummary(a.logEntries)
	now := time.Now()

	format := prompt(scanner, "Формат [1=Excel, 2=PDF, 3=оба]")
	if format == "1" || format == "3" || format == "" {
		if _, err := export.WriteExcelReport(a.cfg.ExportDir, a.logEntries, prs, weekly, now); err != nil {
			log.Printf("Ошибка экспорта Excel: %v", err)
		}
	}
	if format == "2" || format == "3" {
		if _, err := export.WritePDFReport(a.cfg.ExportDir, a.logEntries, now); err != nil {
			log.Printf("Ошибка экспорта PDF: %v", err)
		}
	}
}

// blockMenu конструктор блоков A..E
func (a *app) blockMenu(scanner *bufio.Scanner) {
	fmt.Println("1. Добавить блок")
	fmt.Println("2. Показать блоки")
	fmt.Println("3. Очистить блоки")

	switch prompt(scanner, "Выбор") {
	case "1":
		lift := pickLift(scanner, a.master.AllLifts())
		if lift == "" {
			return
		}
		group := strings.ToUpper(prompt(scanner, "Блок [A-E]"))
		if !validBlockGroup(group) {
			fmt.Println("Нет такой группы блоков.")
			return
		}
		idx := promptInt(scanner, fmt.Sprintf("День [1-%d]", len(models.DayTags)), 0)
		if idx < 1 || idx > len(models.DayTags) {
			return
		}
		block := models.CustomBlock{
			Lift:       lift,
			BlockGroup: group,
			DayTag:     models.DayTags[idx-1],
			Purpose:    prompt(scanner, "Purpose / Role"),
		}
		next, err := a.blocks.Append(a.blockRows, block)
		if err != nil {
			log.Printf("Ошибка сохранения блока: %v", err)
			return
		}
		a.blockRows = next
		fmt.Printf("➕ %s добавлен в блок %s (%s)\n", block.Lift, block.BlockGroup, block.DayTag)
	case "2":
		if len(a.blockRows) == 0 {
			fmt.Println("Блоков пока нет.")
			return
		}
		for _, b := range a.blockRows {
			fmt.Printf("[%s] %-35s %-8s %s\n", b.BlockGroup, b.Lift, b.DayTag, b.Purpose)
		}
	case "3":
		next, err := a.blocks.Clear()
		if err != nil {
			log.Printf("Ошибка очистки блоков: %v", err)
			return
		}
		a.blockRows = next
		fmt.Println("🗑️ Блоки очищены.")
	}
}

// resetMenu разрушительные операции очистки
func (a *app) resetMenu(scanner *bufio.Scanner) {
	fmt.Println("⚠️ Удалённые данные не восстанавливаются (кроме резервной копии журнала).")
	fmt.Println("1. Очистить журнал")
	fmt.Println("2. Очистить все раскладки дней")
	fmt.Println("3. Очистить буфер отката")

	switch prompt(scanner, "Выбор") {
	case "1":
		next, err := a.logs.Clear()
		if err != nil {
			log.Printf("Ошибка очистки журнала: %v", err)
			return
		}
		a.logEntries = next
		fmt.Println("🧹 Журнал очищен.")
	case "2":
		next, err := a.overrides.Clear()
		if err != nil {
			log.Printf("Ошибка очистки раскладок: %v", err)
			return
		}
		a.overrideRows = next
		fmt.Println("🗑️ Раскладки всех недель очищены.")
	case "3":
		if err := a.logs.ClearUndo(); err != nil {
			log.Printf("Ошибка очистки буфера: %v", err)
			return
		}
		fmt.Println("🧽 Буфер отката очищен.")
	}
}

// pickLift выбор упражнения из объединённой библиотеки по номеру
func pickLift(scanner *bufio.Scanner, lifts []string) string {
	if len(lifts) == 0 {
		return ""
	}
	for i, l := range lifts {
		fmt.Printf("%3d. %s\n", i+1, l)
	}
	idx := promptInt(scanner, "Упражнение", 0)
	if idx < 1 || idx > len(lifts) {
		return ""
	}
	return lifts[idx-1]
}

func validBlockGroup(group string) bool {
	for _, g := range models.BlockGroups {
		if g == group {
			return true
		}
	}
	return false
}

// prompt читает строку ответа
func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// promptDefault пустой ответ заменяет значением по умолчанию
func promptDefault(scanner *bufio.Scanner, label, def string) string {
	answer := prompt(scanner, fmt.Sprintf("%s [%s]", label, def))
	if answer == "" {
		return def
	}
	return answer
}

// promptInt нечисловой ответ даёт значение по умолчанию
func promptInt(scanner *bufio.Scanner, label string, def int) int {
	v, err := strconv.Atoi(prompt(scanner, label))
	if err != nil {
		return def
	}
	return v
}

// promptFloat нечисловой ответ даёт значение по умолчанию
func promptFloat(scanner *bufio.Scanner, label string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.Replace(prompt(scanner, label), ",", ".", 1), 64)
	if err != nil {
		return def
	}
	return v
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
