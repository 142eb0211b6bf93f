package domain

// ReportRow — строка итогового отчёта о деплое.
//
// Каждая строка соединяет созданную платформой сущность с локальным
// файлом-источником. Сущность, не сопоставленная ни с одним файлом,
// получает плейсхолдер вместо пути.
type ReportRow struct {
	// File — отображаемый путь файла-источника или плейсхолдер.
	File string `json:"file"`

	// Badge — пометка группы ("BB", "PA" или пустая строка).
	Badge string `json:"badge,omitempty"`

	// Kind — тип созданной сущности.
	Kind ResourceKind `json:"kind"`

	// ID — идентификатор определения на платформе.
	ID string `json:"id"`

	// Version — версия, присвоенная платформой.
	Version int `json:"version"`

	// Key — уникальный ключ созданной сущности.
	Key string `json:"key"`
}
