package cli

import (
	"github.com/spf13/cobra"

	"github.com/dirigent-hq/dirigent-cli/internal/plugin"
)

// NewPluginCmd создаёт группу команд для работы с плагинами.
func NewPluginCmd(outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Manage external plugins",
		Long:  "Plugins are executables named " + plugin.Prefix + "<name> found on PATH. An unknown subcommand is dispatched to the plugin with the same name.",
	}

	cmd.AddCommand(newPluginListCmd(outputFn))

	return cmd
}

func newPluginListCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			plugins := plugin.Discover()
			headers := []string{"NAME", "PATH"}
			rows := make([][]string, len(plugins))
			for i, p := range plugins {
				rows[i] = []string{p.Name, p.Path}
			}

			out.Print(headers, rows, plugins)
			return nil
		},
	}
}
