package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/mcpproxy"
	"github.com/dirigent-hq/dirigent-cli/internal/profile"
)

// NewMCPCmd создаёт команду MCP-прокси.
func NewMCPCmd(version string, connectFn func() (*client.Client, profile.Connection, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve platform operations over the Model Context Protocol",
		Long: `Serve an MCP server on stdio.

The server exposes the deploy, create_instance and get_instance tools
and resolves the platform connection the same way as the CLI: profile,
DIRIGENT_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			s := mcpproxy.New(version, baseDir, mcpproxy.Connector(connectFn))
			return mcpproxy.Serve(s)
		},
	}
}
