package deploy

import (
	"context"
	"log/slog"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/domain"
	"github.com/dirigent-hq/dirigent-cli/internal/resolver"
)

// PlatformAPI — часть клиента платформы, используемая деплоем.
type PlatformAPI interface {
	CreateDeployment(ctx context.Context, tenantID string, resources []client.DeploymentResource) (*client.DeploymentResponse, error)
}

// Deployer выполняет полный цикл деплоя.
type Deployer struct {
	api    PlatformAPI
	logger *slog.Logger
}

// NewDeployer создаёт Deployer. Нулевой logger заменяется глобальным.
func NewDeployer(api PlatformAPI, logger *slog.Logger) *Deployer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deployer{api: api, logger: logger}
}

// Params — параметры одного деплоя.
type Params struct {
	// BaseDir — базовый каталог вызова (обычно рабочий каталог).
	BaseDir string

	// Paths — файлы и каталоги для деплоя.
	Paths []string

	// TenantID — тенант платформы; пустой — тенант по умолчанию.
	TenantID string
}

// Report — итог успешного деплоя.
type Report struct {
	// DeploymentKey — ключ деплоя, присвоенный платформой.
	DeploymentKey string `json:"deployment_key"`

	// Rows — строки отчёта по созданным сущностям.
	Rows []domain.ReportRow `json:"rows"`
}

// Run разрешает ресурсы, отправляет их одним деплоем и сверяет результат.
//
// Ошибки разрешения возвращаются как есть (см. resolver). Ошибка
// платформы или сети заворачивается в *Diagnosis с подсказками и
// списком файлов набора.
func (d *Deployer) Run(ctx context.Context, p Params) (*Report, error) {
	files, err := resolver.Resolve(p.BaseDir, p.Paths)
	if err != nil {
		return nil, err
	}

	d.logger.Info("resolved deployment set",
		"files", len(files),
		"tenant", p.TenantID,
	)

	result, err := d.Submit(ctx, p.TenantID, files)
	if err != nil {
		return nil, err
	}

	d.logger.Info("deployment created",
		"key", result.Key,
		"processes", len(result.Processes),
		"decisions", len(result.Decisions),
		"forms", len(result.Forms),
	)

	return &Report{
		DeploymentKey: result.Key,
		Rows:          Reconcile(result, files),
	}, nil
}

// Submit отправляет разрешённый набор одним запросом к платформе.
// Пустой набор — ошибка resolver.ErrNoResources.
func (d *Deployer) Submit(ctx context.Context, tenantID string, files []*domain.ResourceFile) (*client.DeploymentResponse, error) {
	if len(files) == 0 {
		return nil, resolver.ErrNoResources
	}

	resources := make([]client.DeploymentResource, len(files))
	for i, f := range files {
		resources[i] = client.DeploymentResource{
			Name:        f.Name,
			Content:     f.Content,
			ContentType: f.Kind.ContentType(),
		}
	}

	result, err := d.api.CreateDeployment(ctx, tenantID, resources)
	if err != nil {
		return nil, Diagnose(err, files)
	}
	return result, nil
}
