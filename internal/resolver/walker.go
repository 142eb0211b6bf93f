package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

// walker обходит пути и собирает деплоируемые ресурсы.
//
// Порядок обхода фиксирован и не зависит от того, как операционная
// система перечисляет каталог:
//  1. файлы каталога в лексикографическом порядке
//  2. подкаталоги building block в лексикографическом порядке
//  3. остальные подкаталоги в лексикографическом порядке
type walker struct {
	// base — абсолютный базовый каталог вызова. Ограничивает
	// классификацию групп и служит точкой отсчёта для отображаемых путей.
	base string
}

// walk обходит один корневой путь. Несуществующий путь не считается
// ошибкой и не даёт ни одного файла.
func (w *walker) walk(root string, acc *[]*domain.ResourceFile) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		if _, ok := domain.KindOf(root); !ok {
			return nil
		}
		f, err := w.load(root)
		if err != nil {
			return err
		}
		*acc = append(*acc, f)
		return nil
	}

	return w.walkDir(root, acc)
}

// walkDir обходит каталог рекурсивно.
func (w *walker) walkDir(dir string, acc *[]*domain.ResourceFile) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	// os.ReadDir возвращает записи отсортированными по имени.
	var blockDirs, plainDirs []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if strings.Contains(e.Name(), buildingBlockMarker) {
				blockDirs = append(blockDirs, path)
			} else {
				plainDirs = append(plainDirs, path)
			}
			continue
		}
		if _, ok := domain.KindOf(e.Name()); !ok {
			continue
		}
		f, err := w.load(path)
		if err != nil {
			return err
		}
		*acc = append(*acc, f)
	}

	for _, d := range blockDirs {
		if err := w.walkDir(d, acc); err != nil {
			return err
		}
	}
	for _, d := range plainDirs {
		if err := w.walkDir(d, acc); err != nil {
			return err
		}
	}
	return nil
}

// load читает файл ресурса и классифицирует его группу.
// Ошибка чтения фатальна: частично прочитанный набор деплоить нельзя.
func (w *walker) load(path string) (*domain.ResourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resource %s: %w", path, err)
	}

	kind, _ := domain.KindOf(path)
	group, groupPath := classify(filepath.Dir(path), w.base)

	return &domain.ResourceFile{
		Path:         path,
		Name:         filepath.Base(path),
		Content:      content,
		Kind:         kind,
		Group:        group,
		GroupPath:    groupPath,
		RelativePath: displayPath(w.base, path),
	}, nil
}

// displayPath возвращает путь относительно базового каталога.
// Если относительный путь вычислить нельзя, возвращается исходный.
func displayPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
