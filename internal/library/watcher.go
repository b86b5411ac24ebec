package library

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher следит за изменениями Excel файлов библиотеки и сообщает,
// когда их нужно перечитать (пользователь правит .xlsx во внешнем редакторе)
type Watcher struct {
	paths  []string
	events chan string
	fsw    *fsnotify.Watcher
}

// NewWatcher создаёт наблюдатель за файлами библиотеки
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		paths:  paths,
		events: make(chan string, 1),
		fsw:    fsw,
	}, nil
}

// Changes канал с путями изменённых файлов (после дебаунса)
func (w *Watcher) Changes() <-chan string {
	return w.events
}

// Start запускает наблюдение. События записи приходят пачками,
// поэтому повторы в пределах 2 секунд гасятся.
func (w *Watcher) Start() {
	go func() {
		defer w.fsw.Close()

		var lastEvent time.Time

		for {
			select {
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if time.Since(lastEvent) < 2*time.Second {
						continue
					}
					lastEvent = time.Now()

					log.Printf("📘 Библиотека изменена: %s", event.Name)
					select {
					case w.events <- event.Name:
					default:
					}
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				log.Printf("Ошибка наблюдателя: %v", err)
			}
		}
	}()

	for _, p := range w.paths {
		if err := w.fsw.Add(p); err != nil {
			log.Printf("Ошибка добавления %s в наблюдатель: %v", p, err)
		}
	}

	log.Printf("Наблюдение за библиотекой запущено (%d файлов)", len(w.paths))
}

// Stop останавливает наблюдение
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}
