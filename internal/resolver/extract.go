package resolver

import (
	"regexp"

	"github.com/dirigent-hq/dirigent-cli/internal/domain"
)

// Шаблоны атрибута id корневых элементов XML-ресурсов.
// Namespace-префикс элемента (bpmn:, dmn: и т.п.) необязателен.
var (
	processIDPattern  = regexp.MustCompile(`<(?:[A-Za-z_][\w.-]*:)?process\b[^>]*\bid\s*=\s*"([^"]*)"`)
	decisionIDPattern = regexp.MustCompile(`<(?:[A-Za-z_][\w.-]*:)?decision\b[^>]*\bid\s*=\s*"([^"]*)"`)
)

// DefinitionID извлекает локальный id определения из ресурса.
//
// Для процессов и решений id берётся из первого подходящего элемента
// содержимого. Для форм id — имя файла без расширения. Возвращает
// пустую строку, если id извлечь не удалось.
func DefinitionID(f *domain.ResourceFile) string {
	switch f.Kind {
	case domain.KindProcess:
		return firstSubmatch(processIDPattern, f.Content)
	case domain.KindDecision:
		return firstSubmatch(decisionIDPattern, f.Content)
	case domain.KindForm:
		return f.Stem()
	default:
		return ""
	}
}

func firstSubmatch(re *regexp.Regexp, content []byte) string {
	m := re.FindSubmatch(content)
	if m == nil {
		return ""
	}
	return string(m[1])
}
