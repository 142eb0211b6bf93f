package resolver

import (
	"errors"
	"sort"
	"strings"
)

// Ошибки разрешения ресурсов.
var (
	// ErrNoPaths — не передано ни одного пути.
	ErrNoPaths = errors.New("no paths given")

	// ErrNoResources — по переданным путям не найдено ни одного ресурса.
	ErrNoResources = errors.New("no deployable resources found")
)

// DuplicateError — несколько файлов объявляют один id определения.
// Конфликт фатален и обнаруживается до первого сетевого вызова.
type DuplicateError struct {
	// Paths — конфликтующие файлы по id определения.
	// Каждый список содержит минимум два пути в порядке обнаружения.
	Paths map[string][]string
}

// Error реализует интерфейс error.
func (e *DuplicateError) Error() string {
	ids := make([]string, 0, len(e.Paths))
	for id := range e.Paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("duplicate definition ids in deployment set:")
	for _, id := range ids {
		b.WriteString("\n  " + id + ":")
		for _, p := range e.Paths[id] {
			b.WriteString("\n    " + p)
		}
	}
	return b.String()
}
