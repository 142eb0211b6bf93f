package mcpproxy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/deploy"
	"github.com/dirigent-hq/dirigent-cli/internal/telemetry"
)

// --- Инструмент deploy ---

// DeployTool — деплой набора ресурсов одним запросом.
type DeployTool struct {
	connect Connector
	baseDir string
}

// NewDeployTool создаёт инструмент деплоя.
func NewDeployTool(connect Connector, baseDir string) *DeployTool {
	return &DeployTool{connect: connect, baseDir: baseDir}
}

// Definition описывает инструмент для MCP-клиента.
func (t *DeployTool) Definition() mcp.Tool {
	return mcp.NewTool("deploy",
		mcp.WithDescription("Deploy process (.bpmn), decision (.dmn) and form (.form) resources to the platform in one atomic deployment. Directories are walked recursively, building-block groups deploy first."),
		mcp.WithArray("paths",
			mcp.Required(),
			mcp.Description("Files or directories to deploy. Relative paths are resolved against the working directory."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("tenant",
			mcp.Description("Tenant id. Overrides the tenant of the active profile."),
		),
	)
}

// Handle выполняет деплой и возвращает отчёт в JSON.
func (t *DeployTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths := request.GetStringSlice("paths", nil)
	if len(paths) == 0 {
		return mcp.NewToolResultError("paths is required"), nil
	}

	cl, conn, err := t.connect()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tenant := request.GetString("tenant", "")
	if tenant == "" {
		tenant = conn.Tenant
	}

	d := deploy.NewDeployer(cl, telemetry.FromContext(ctx))
	report, err := d.Run(ctx, deploy.Params{
		BaseDir:  t.baseDir,
		Paths:    paths,
		TenantID: tenant,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report)
}

// --- Инструмент create_instance ---

// CreateInstanceTool — запуск экземпляра процесса.
type CreateInstanceTool struct {
	connect Connector
}

// NewCreateInstanceTool создаёт инструмент запуска экземпляров.
func NewCreateInstanceTool(connect Connector) *CreateInstanceTool {
	return &CreateInstanceTool{connect: connect}
}

// Definition описывает инструмент для MCP-клиента.
func (t *CreateInstanceTool) Definition() mcp.Tool {
	return mcp.NewTool("create_instance",
		mcp.WithDescription("Start a process instance by process definition id."),
		mcp.WithString("process_id",
			mcp.Required(),
			mcp.Description("Process definition id, as declared in the BPMN model."),
		),
		mcp.WithNumber("version",
			mcp.Description("Definition version to start. Latest when omitted."),
		),
		mcp.WithObject("variables",
			mcp.Description("Initial instance variables."),
		),
	)
}

// Handle запускает экземпляр и возвращает его состояние в JSON.
func (t *CreateInstanceTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	processID, err := request.RequireString("process_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := client.CreateInstanceRequest{ProcessID: processID}
	if version := request.GetInt("version", 0); version > 0 {
		req.Version = &version
	}
	if raw, ok := request.GetArguments()["variables"]; ok {
		vars, ok := raw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError("variables must be an object"), nil
		}
		req.Variables = vars
	}

	cl, conn, err := t.connect()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req.TenantID = conn.Tenant

	inst, err := cl.CreateInstance(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(inst)
}

// --- Инструмент get_instance ---

// GetInstanceTool — чтение состояния экземпляра процесса.
type GetInstanceTool struct {
	connect Connector
}

// NewGetInstanceTool создаёт инструмент чтения экземпляров.
func NewGetInstanceTool(connect Connector) *GetInstanceTool {
	return &GetInstanceTool{connect: connect}
}

// Definition описывает инструмент для MCP-клиента.
func (t *GetInstanceTool) Definition() mcp.Tool {
	return mcp.NewTool("get_instance",
		mcp.WithDescription("Fetch the current state of a process instance."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Instance key returned by create_instance."),
		),
	)
}

// Handle возвращает состояние экземпляра в JSON.
func (t *GetInstanceTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cl, _, err := t.connect()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inst, err := cl.GetInstance(ctx, key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(inst)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
