package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dirigent-hq/dirigent-cli/internal/profile"
)

// profileRow — представление профиля для вывода, токен замаскирован.
type profileRow struct {
	Name     string `json:"name"`
	Current  bool   `json:"current"`
	Address  string `json:"address"`
	Tenant   string `json:"tenant,omitempty"`
	Token    string `json:"token,omitempty"`
	Insecure bool   `json:"insecure,omitempty"`
}

// NewProfileCmd создаёт группу команд для управления профилями подключения.
func NewProfileCmd(storeFn func() (*profile.Store, error), outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage connection profiles",
	}

	cmd.AddCommand(
		newProfileAddCmd(storeFn, outputFn),
		newProfileListCmd(storeFn, outputFn),
		newProfileShowCmd(storeFn, outputFn),
		newProfileUseCmd(storeFn, outputFn),
		newProfileDeleteCmd(storeFn, outputFn),
	)

	return cmd
}

func newProfileAddCmd(storeFn func() (*profile.Store, error), outputFn func() *Output) *cobra.Command {
	var address, tenant, token string
	var insecure bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a connection profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			out := outputFn()

			if err := store.Add(args[0], profile.Profile{
				Address:  address,
				Tenant:   tenant,
				Token:    token,
				Insecure: insecure,
			}); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Profile added: %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", profile.DefaultAddress, "Platform gateway address")
	cmd.Flags().StringVar(&tenant, "tenant", "", "Tenant id")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")

	return cmd
}

func newProfileListCmd(storeFn func() (*profile.Store, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connection profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			out := outputFn()

			names := store.Names()
			headers := []string{"NAME", "CURRENT", "ADDRESS", "TENANT"}
			rows := make([][]string, len(names))
			data := make([]profileRow, len(names))
			for i, name := range names {
				p := store.Profiles[name]
				mark := ""
				if name == store.Current {
					mark = "*"
				}
				rows[i] = []string{name, mark, p.Address, p.Tenant}
				data[i] = profileRow{
					Name:     name,
					Current:  name == store.Current,
					Address:  p.Address,
					Tenant:   p.Tenant,
					Insecure: p.Insecure,
				}
			}

			out.Print(headers, rows, data)
			return nil
		},
	}
}

func newProfileShowCmd(storeFn func() (*profile.Store, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show [NAME]",
		Short: "Show a connection profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			out := outputFn()

			name := store.Current
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				return fmt.Errorf("no profile selected, pass NAME or run: dirigent profile use NAME")
			}

			p, err := store.Get(name)
			if err != nil {
				return err
			}

			mark := ""
			if name == store.Current {
				mark = "*"
			}
			row := profileRow{
				Name:     name,
				Current:  name == store.Current,
				Address:  p.Address,
				Tenant:   p.Tenant,
				Token:    maskToken(p.Token),
				Insecure: p.Insecure,
			}
			out.Print(
				[]string{"NAME", "CURRENT", "ADDRESS", "TENANT", "TOKEN", "INSECURE"},
				[][]string{{name, mark, p.Address, p.Tenant, row.Token, fmt.Sprintf("%t", p.Insecure)}},
				row,
			)
			return nil
		},
	}
}

// maskToken прячет токен, оставляя последние четыре символа.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func newProfileUseCmd(storeFn func() (*profile.Store, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Select the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			out := outputFn()

			if err := store.Use(args[0]); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Profile selected: %s", args[0]))
			return nil
		},
	}
}

func newProfileDeleteCmd(storeFn func() (*profile.Store, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a connection profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			out := outputFn()

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Profile deleted: %s", args[0]))
			return nil
		},
	}
}
