package domain

import (
	"path/filepath"
	"strings"
)

// ResourceKind — тип деплоируемого ресурса, определяемый расширением файла.
type ResourceKind string

const (
	// KindProcess — определение процесса (.bpmn).
	KindProcess ResourceKind = "PROCESS"

	// KindDecision — определение решения (.dmn).
	KindDecision ResourceKind = "DECISION"

	// KindForm — определение формы (.form).
	KindForm ResourceKind = "FORM"
)

// KindOf определяет тип ресурса по имени файла.
// Второе значение false, если расширение не деплоируемое.
func KindOf(name string) (ResourceKind, bool) {
	switch filepath.Ext(name) {
	case ".bpmn":
		return KindProcess, true
	case ".dmn":
		return KindDecision, true
	case ".form":
		return KindForm, true
	default:
		return "", false
	}
}

// ContentType возвращает MIME-тип ресурса для multipart-загрузки.
func (k ResourceKind) ContentType() string {
	switch k {
	case KindProcess, KindDecision:
		return "application/xml"
	case KindForm:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// GroupKind — вид логической группы, к которой принадлежит ресурс.
//
// Группа определяется по каталогам-предкам файла в пределах базового
// каталога вызова:
//
//	BUILDING_BLOCK      — предок содержит "_bb-" в имени каталога
//	PROCESS_APPLICATION — предок содержит файл-маркер ".process-application"
//	NONE                — ни один предок не помечен
type GroupKind string

const (
	// GroupBuildingBlock — ресурс внутри каталога building block.
	GroupBuildingBlock GroupKind = "BUILDING_BLOCK"

	// GroupProcessApplication — ресурс внутри process application.
	GroupProcessApplication GroupKind = "PROCESS_APPLICATION"

	// GroupNone — ресурс вне помеченных каталогов.
	GroupNone GroupKind = "NONE"
)

// Rank возвращает приоритет группы при упорядочивании деплоя.
// Building blocks деплоятся раньше process applications,
// несгруппированные ресурсы — последними.
func (k GroupKind) Rank() int {
	switch k {
	case GroupBuildingBlock:
		return 0
	case GroupProcessApplication:
		return 1
	default:
		return 2
	}
}

// Badge возвращает короткую пометку группы для отчёта:
// "BB", "PA" или пустая строка.
func (k GroupKind) Badge() string {
	switch k {
	case GroupBuildingBlock:
		return "BB"
	case GroupProcessApplication:
		return "PA"
	default:
		return ""
	}
}

// ResourceFile — обнаруженный деплоируемый файл ресурса.
type ResourceFile struct {
	// Path — абсолютный путь к файлу.
	Path string `json:"path"`

	// Name — имя файла без каталога.
	Name string `json:"name"`

	// Content — содержимое файла, прочитанное при обнаружении.
	Content []byte `json:"-"`

	// Kind — тип ресурса по расширению.
	Kind ResourceKind `json:"kind"`

	// Group — вид группы (building block, process application, NONE).
	Group GroupKind `json:"group"`

	// GroupPath — абсолютный путь корневого каталога группы.
	// Пустая строка для несгруппированных ресурсов.
	GroupPath string `json:"group_path,omitempty"`

	// RelativePath — путь для отображения, вычисленный относительно
	// базового каталога вызова.
	RelativePath string `json:"relative_path"`
}

// Stem возвращает имя файла без расширения.
// Для форм stem служит локальным идентификатором определения.
func (f *ResourceFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}
