package resolver

import (
	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

// findDuplicates строит карту id → файлы для процессов и решений
// и возвращает ошибку, если какой-то id объявлен более чем одним файлом.
//
// Формы не участвуют: их id — имя файла, одноимённая форма в другом
// каталоге считается новой версией того же определения. Ресурсы без
// извлечённого id пропускаются — их валидирует платформа.
func findDuplicates(files []*domain.ResourceFile) *DuplicateError {
	byID := make(map[string][]string)
	for _, f := range files {
		if f.Kind != domain.KindProcess && f.Kind != domain.KindDecision {
			continue
		}
		id := DefinitionID(f)
		if id == "" {
			continue
		}
		byID[id] = append(byID[id], f.Path)
	}

	dups := make(map[string][]string)
	for id, paths := range byID {
		if len(paths) > 1 {
			dups[id] = paths
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &DuplicateError{Paths: dups}
}
