package mcpproxy

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/profile"
)

// Connector выдаёт клиент платформы и разрешённые параметры
// подключения. Вызывается при каждом обращении к инструменту.
type Connector func() (*client.Client, profile.Connection, error)

const instructions = `Dirigent proxies a workflow orchestration platform.

Tools:
- deploy: deploy process (.bpmn), decision (.dmn) and form (.form) resources
  in one atomic deployment. Pass file or directory paths; directories are
  walked recursively and building-block groups are deployed first.
- create_instance: start a process instance by process id, optionally with
  a definition version and variables.
- get_instance: fetch the current state of a process instance by key.

The connection (address, tenant, token) comes from the dirigent profile
configuration and DIRIGENT_* environment variables.`

// New собирает MCP-сервер прокси со всеми инструментами.
//
// baseDir — рабочий каталог, к которому привязываются относительные
// пути инструмента deploy.
func New(version, baseDir string, connect Connector) *server.MCPServer {
	s := server.NewMCPServer(
		"dirigent",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	deployTool := NewDeployTool(connect, baseDir)
	s.AddTool(deployTool.Definition(), deployTool.Handle)

	createTool := NewCreateInstanceTool(connect)
	s.AddTool(createTool.Definition(), createTool.Handle)

	getTool := NewGetInstanceTool(connect)
	s.AddTool(getTool.Definition(), getTool.Handle)

	return s
}

// Serve обслуживает протокол на stdio до закрытия входного потока.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
