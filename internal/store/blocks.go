package store

import "hemsworth/internal/models"

// BlockStore конструктор блоков (custom_blocks.csv): чисто аддитивный
// список тегов без семантики разрешения плана
type BlockStore struct {
	path string
}

// NewBlockStore создаёт хранилище блоков
func NewBlockStore(path string) *BlockStore {
	return &BlockStore{path: path}
}

// Load читает все блоки
func (s *BlockStore) Load() ([]models.CustomBlock, error) {
	rows, err := readTable(s.path, models.BlockColumns)
	if err != nil {
		return nil, err
	}
	blocks := make([]models.CustomBlock, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, models.CustomBlock{
			Lift:       row[0],
			BlockGroup: row[1],
			DayTag:     row[2],
			Purpose:    row[3],
		})
	}
	return blocks, nil
}

// Append добавляет блок и сохраняет таблицу
func (s *BlockStore) Append(blocks []models.CustomBlock, b models.CustomBlock) ([]models.CustomBlock, error) {
	next := append(append([]models.CustomBlock{}, blocks...), b)
	if err := s.persist(next); err != nil {
		return blocks, err
	}
	return next, nil
}

// Clear заменяет таблицу блоков пустой той же формы
func (s *BlockStore) Clear() ([]models.CustomBlock, error) {
	if err := s.persist(nil); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *BlockStore) persist(blocks []models.CustomBlock) error {
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []string{b.Lift, b.BlockGroup, b.DayTag, b.Purpose})
	}
	return writeTable(s.path, models.BlockColumns, rows)
}
