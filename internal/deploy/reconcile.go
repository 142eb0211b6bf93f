package deploy

import (
	"sort"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/domain"
	"github.com/dirigent-hq/dirigent-cli/internal/resolver"
)

// placeholderFile — значение колонки FILE для сущностей, которые
// не удалось сопоставить с локальным файлом.
const placeholderFile = "(unknown)"

// Reconcile сопоставляет созданные платформой сущности с локальными
// файлами-источниками.
//
// Процессы и решения сопоставляются по извлечённому id определения,
// формы — по имени файла без расширения. Сущности без локального
// файла получают плейсхолдер и идут в конце отчёта. Остальные строки
// отсортированы: ранг группы, корень группы, отображаемый путь.
func Reconcile(result *client.DeploymentResponse, files []*domain.ResourceFile) []domain.ReportRow {
	byID := make(map[string]*domain.ResourceFile)
	byStem := make(map[string]*domain.ResourceFile)
	for _, f := range files {
		switch f.Kind {
		case domain.KindProcess, domain.KindDecision:
			if id := resolver.DefinitionID(f); id != "" {
				byID[id] = f
			}
		case domain.KindForm:
			byStem[f.Stem()] = f
		}
	}

	type entry struct {
		row  domain.ReportRow
		file *domain.ResourceFile
	}

	entries := make([]entry, 0, len(result.Processes)+len(result.Decisions)+len(result.Forms))
	add := func(kind domain.ResourceKind, id string, version int, key string, f *domain.ResourceFile) {
		row := domain.ReportRow{Kind: kind, ID: id, Version: version, Key: key, File: placeholderFile}
		if f != nil {
			row.File = f.RelativePath
			row.Badge = f.Group.Badge()
		}
		entries = append(entries, entry{row: row, file: f})
	}

	for _, p := range result.Processes {
		add(domain.KindProcess, p.ID, p.Version, p.Key, byID[p.ID])
	}
	for _, dec := range result.Decisions {
		add(domain.KindDecision, dec.ID, dec.Version, dec.Key, byID[dec.ID])
	}
	for _, fm := range result.Forms {
		add(domain.KindForm, fm.FormID, fm.Version, fm.Key, byStem[fm.FormID])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.file == nil) != (b.file == nil) {
			return b.file == nil // плейсхолдеры в конце
		}
		if a.file == nil {
			return a.row.ID < b.row.ID
		}
		if ra, rb := a.file.Group.Rank(), b.file.Group.Rank(); ra != rb {
			return ra < rb
		}
		if a.file.GroupPath != b.file.GroupPath {
			return a.file.GroupPath < b.file.GroupPath
		}
		return a.row.File < b.row.File
	})

	rows := make([]domain.ReportRow, len(entries))
	for i, e := range entries {
		rows[i] = e.row
	}
	return rows
}
