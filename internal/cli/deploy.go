package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/deploy"
	"github.com/dirigent-hq/dirigent-cli/internal/profile"
	"github.com/dirigent-hq/dirigent-cli/internal/telemetry"
)

// NewDeployCmd создаёт команду деплоя ресурсов.
func NewDeployCmd(connectFn func() (*client.Client, profile.Connection, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy PATH...",
		Short: "Deploy process, decision and form resources",
		Long: `Deploy resources to the platform in one atomic deployment.

PATH may be a .bpmn, .dmn or .form file, or a directory. Directories
are walked recursively: files of a directory deploy before its
subdirectories, building-block directories before the rest. Resources
grouped into building blocks or process applications deploy ahead of
ungrouped ones. Duplicate process or decision ids abort the deployment
before anything reaches the platform.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, conn, err := connectFn()
			if err != nil {
				return err
			}
			out := outputFn()

			baseDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			logger := telemetry.FromContext(cmd.Context())
			if conn.Profile != "" {
				logger = telemetry.WithProfile(logger, conn.Profile)
			}

			d := deploy.NewDeployer(cl, logger)
			report, err := d.Run(cmd.Context(), deploy.Params{
				BaseDir:  baseDir,
				Paths:    args,
				TenantID: conn.Tenant,
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Deployment %s created (%d definitions)", report.DeploymentKey, len(report.Rows)))

			headers := []string{"FILE", "TYPE", "ID", "VERSION", "KEY"}
			rows := make([][]string, len(report.Rows))
			for i, r := range report.Rows {
				file := r.File
				if r.Badge != "" {
					file += " [" + r.Badge + "]"
				}
				rows[i] = []string{file, string(r.Kind), r.ID, strconv.Itoa(r.Version), r.Key}
			}

			out.Print(headers, rows, report)
			return nil
		},
	}
}
