package resolver

import (
	"sort"

	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

// sortResources упорядочивает ресурсы для деплоя.
//
// Ключи сравнения по убыванию значимости:
//  1. ранг группы — building blocks, затем process applications,
//     затем несгруппированные
//  2. корень группы — ресурсы одной группы идут подряд
//  3. полный путь файла
//
// Сортировка стабильна: повторное разрешение того же дерева даёт
// тот же порядок.
func sortResources(files []*domain.ResourceFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return lessResource(files[i], files[j])
	})
}

func lessResource(a, b *domain.ResourceFile) bool {
	if ra, rb := a.Group.Rank(), b.Group.Rank(); ra != rb {
		return ra < rb
	}
	if a.GroupPath != b.GroupPath {
		return a.GroupPath < b.GroupPath
	}
	return a.Path < b.Path
}
