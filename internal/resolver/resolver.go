package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

// Resolve превращает пути командной строки в упорядоченный набор
// ресурсов для деплоя.
//
// Конвейер:
//  1. обход путей и чтение файлов (walker)
//  2. классификация групп (classifier)
//  3. проверка конфликтов id (duplicates)
//  4. упорядочивание (order)
//
// Относительные пути разрешаются от baseDir. Пустой список путей —
// ErrNoPaths, пустой результат обхода — ErrNoResources, конфликт id —
// *DuplicateError.
func Resolve(baseDir string, paths []string) ([]*domain.ResourceFile, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base dir: %w", err)
	}

	w := &walker{base: base}
	var files []*domain.ResourceFile
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		} else {
			p = filepath.Clean(p)
		}
		if err := w.walk(p, &files); err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, ErrNoResources
	}
	if dup := findDuplicates(files); dup != nil {
		return nil, dup
	}

	sortResources(files)
	return files, nil
}
