package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

// Маркеры групп.
const (
	// buildingBlockMarker — подстрока в имени каталога building block.
	buildingBlockMarker = "_bb-"

	// processAppMarker — имя файла-маркера process application.
	processAppMarker = ".process-application"
)

// classify определяет группу файла по каталогам-предкам.
//
// Поиск идёт от каталога файла вверх и безусловно останавливается,
// как только достигает базового каталога или выходит за его пределы:
// сам base группой не является. На каждом уровне маркер building block
// в имени каталога имеет приоритет над файлом-маркером process
// application. Возвращает вид группы и каталог — корень группы.
func classify(dir, base string) (domain.GroupKind, string) {
	for {
		rel, err := filepath.Rel(base, dir)
		if err != nil || rel == "." || rel == ".." ||
			strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return domain.GroupNone, ""
		}

		if strings.Contains(filepath.Base(dir), buildingBlockMarker) {
			return domain.GroupBuildingBlock, dir
		}
		if _, err := os.Stat(filepath.Join(dir, processAppMarker)); err == nil {
			return domain.GroupProcessApplication, dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return domain.GroupNone, ""
		}
		dir = parent
	}
}
