package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/profile"
)

// NewInstanceCmd создаёт группу команд для управления экземплярами процессов.
func NewInstanceCmd(connectFn func() (*client.Client, profile.Connection, error), outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instance",
		Short: "Manage process instances",
	}

	cmd.AddCommand(
		newInstanceCreateCmd(connectFn, outputFn),
		newInstanceShowCmd(connectFn, outputFn),
		newInstanceCancelCmd(connectFn, outputFn),
	)

	return cmd
}

func newInstanceCreateCmd(connectFn func() (*client.Client, profile.Connection, error), outputFn func() *Output) *cobra.Command {
	var version int
	var variables []string

	cmd := &cobra.Command{
		Use:   "create PROCESS_ID",
		Short: "Create a process instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, conn, err := connectFn()
			if err != nil {
				return err
			}
			out := outputFn()

			req := client.CreateInstanceRequest{
				ProcessID: args[0],
				TenantID:  conn.Tenant,
			}
			if cmd.Flags().Changed("version") {
				req.Version = &version
			}
			if len(variables) > 0 {
				req.Variables = make(map[string]any)
				for _, kv := range variables {
					key, value, err := parseVariable(kv)
					if err != nil {
						return err
					}
					req.Variables[key] = value
				}
			}

			inst, err := cl.CreateInstance(cmd.Context(), req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Instance created: %s", inst.Key))
			out.Print(
				[]string{"KEY", "PROCESS_ID", "VERSION", "STATUS"},
				[][]string{{inst.Key, inst.ProcessID, strconv.Itoa(inst.Version), inst.Status}},
				inst,
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "Definition version (latest if not specified)")
	cmd.Flags().StringArrayVar(&variables, "variable", nil, "Variable as KEY=VALUE, value parsed as JSON when valid (repeatable)")

	return cmd
}

// parseVariable разбирает пару KEY=VALUE. Значение, являющееся
// корректным JSON, передаётся типизированным, иначе — строкой.
func parseVariable(kv string) (string, any, error) {
	parts := strings.SplitN(kv, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", nil, fmt.Errorf("invalid variable format %q, expected KEY=VALUE", kv)
	}
	var value any
	if err := json.Unmarshal([]byte(parts[1]), &value); err != nil {
		return parts[0], parts[1], nil
	}
	return parts[0], value, nil
}

func newInstanceShowCmd(connectFn func() (*client.Client, profile.Connection, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY",
		Short: "Show instance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, _, err := connectFn()
			if err != nil {
				return err
			}
			out := outputFn()

			inst, err := cl.GetInstance(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out.Print(
				[]string{"KEY", "PROCESS_ID", "VERSION", "STATUS", "STARTED", "FINISHED"},
				[][]string{{inst.Key, inst.ProcessID, strconv.Itoa(inst.Version), inst.Status, inst.StartedAt, inst.FinishedAt}},
				inst,
			)
			return nil
		},
	}
}

func newInstanceCancelCmd(connectFn func() (*client.Client, profile.Connection, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel KEY",
		Short: "Cancel a running instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, _, err := connectFn()
			if err != nil {
				return err
			}
			out := outputFn()

			if err := cl.CancelInstance(cmd.Context(), args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Instance cancelled: %s", args[0]))
			return nil
		},
	}
}
