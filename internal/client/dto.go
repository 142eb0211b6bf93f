package client

// --- Deployment types ---

// DeploymentResource — один файл в составе деплоя.
type DeploymentResource struct {
	// Name — имя файла, под которым ресурс уходит на платформу.
	Name string

	// Content — содержимое файла.
	Content []byte

	// ContentType — MIME-тип multipart-части.
	ContentType string
}

// DeploymentResponse — результат деплоя из API.
type DeploymentResponse struct {
	Key       string                    `json:"key"`
	TenantID  string                    `json:"tenantId,omitempty"`
	Processes []ProcessDefinitionEntry  `json:"processes"`
	Decisions []DecisionDefinitionEntry `json:"decisions"`
	Forms     []FormDefinitionEntry     `json:"forms"`
}

// ProcessDefinitionEntry — созданное определение процесса.
type ProcessDefinitionEntry struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
	Key     string `json:"key"`
}

// DecisionDefinitionEntry — созданное определение решения.
type DecisionDefinitionEntry struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
	Key     string `json:"key"`
}

// FormDefinitionEntry — созданное определение формы.
type FormDefinitionEntry struct {
	FormID  string `json:"formId"`
	Version int    `json:"version"`
	Key     string `json:"key"`
}

// --- Instance types ---

// CreateInstanceRequest — запуск экземпляра процесса.
type CreateInstanceRequest struct {
	ProcessID string         `json:"processId"`
	Version   *int           `json:"version,omitempty"`
	TenantID  string         `json:"tenantId,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
}

// InstanceResponse — экземпляр процесса из API.
type InstanceResponse struct {
	Key        string         `json:"key"`
	ProcessID  string         `json:"processId"`
	Version    int            `json:"version"`
	TenantID   string         `json:"tenantId,omitempty"`
	Status     string         `json:"status"`
	Variables  map[string]any `json:"variables,omitempty"`
	StartedAt  string         `json:"startedAt,omitempty"`
	FinishedAt string         `json:"finishedAt,omitempty"`
}
