// Dirigent CLI — инструмент командной строки платформы оркестрации
// процессов: деплой ресурсов, экземпляры процессов, профили подключения.
//
// Использование:
//
//	dirigent [--profile NAME] [--address URL] [--tenant ID] [--json] <command> [flags]
//
// Команды:
//
//	deploy    Деплой ресурсов (.bpmn, .dmn, .form)
//	instance  Управление экземплярами процессов
//	profile   Управление профилями подключения
//	mcp       MCP-прокси на stdio
//	plugin    Работа с внешними плагинами
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dirigent-hq/dirigent-cli/internal/cli"
	"github.com/dirigent-hq/dirigent-cli/internal/client"
	"github.com/dirigent-hq/dirigent-cli/internal/plugin"
	"github.com/dirigent-hq/dirigent-cli/internal/profile"
	"github.com/dirigent-hq/dirigent-cli/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	// .env в рабочем каталоге подхватывается до чтения окружения
	_ = godotenv.Load()

	// Инициализируем structured logging
	logger := telemetry.SetupLogger()

	var profileName string
	var address string
	var tenant string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "dirigent",
		Short:         "Dirigent CLI — workflow platform client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "Connection profile name")
	rootCmd.PersistentFlags().StringVar(&address, "address", "", "Platform gateway address (overrides the profile)")
	rootCmd.PersistentFlags().StringVar(&tenant, "tenant", "", "Tenant id (overrides the profile)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	storeFn := func() (*profile.Store, error) {
		path, err := profile.DefaultPath()
		if err != nil {
			return nil, err
		}
		return profile.Load(path)
	}
	connectFn := func() (*client.Client, profile.Connection, error) {
		store, err := storeFn()
		if err != nil {
			return nil, profile.Connection{}, err
		}
		conn, err := store.Resolve(profile.Overrides{
			Profile: profileName,
			Address: address,
			Tenant:  tenant,
		})
		if err != nil {
			return nil, profile.Connection{}, err
		}
		cl := client.New(client.Config{
			Address:  conn.Address,
			Token:    conn.Token,
			Insecure: conn.Insecure,
		})
		return cl, conn, nil
	}
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewDeployCmd(connectFn, outputFn),
		cli.NewInstanceCmd(connectFn, outputFn),
		cli.NewProfileCmd(storeFn, outputFn),
		cli.NewMCPCmd(version, connectFn),
		cli.NewPluginCmd(outputFn),
	)

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = telemetry.WithLogger(ctx, logger)

	// Неизвестная подкоманда уходит внешнему плагину, если он есть.
	if name, rest, ok := pluginArgs(rootCmd, os.Args[1:]); ok {
		if path, found := plugin.Find(name); found {
			code, err := plugin.Run(ctx, path, rest)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			os.Exit(code)
		}
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// pluginArgs решает, относится ли вызов к внешнему плагину:
// первый аргумент — не флаг и не известная команда.
func pluginArgs(root *cobra.Command, args []string) (string, []string, bool) {
	if len(args) == 0 {
		return "", nil, false
	}
	first := args[0]
	if strings.HasPrefix(first, "-") {
		return "", nil, false
	}
	if isKnownCommand(root, first) {
		return "", nil, false
	}
	return first, args[1:], true
}

// isKnownCommand учитывает и команды, которые cobra добавляет
// только при запуске: help, completion и автодополнение оболочки.
func isKnownCommand(root *cobra.Command, name string) bool {
	switch name {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
