package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var assumeYes bool

// Publisher commands act as the primary admin.
func publishersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "Manage the publisher (admin) allow-list",
	}
	cmd.AddCommand(publishersListCmd(), publishersAddCmd(), publishersRemoveCmd())
	return cmd
}

func publishersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List publishers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := adminService(cmd.Context())
			if err != nil {
				return err
			}
			pubs, err := svc.ListPublishers(cmd.Context(), cfg.AdminPrimaryAddress)
			if err != nil {
				return err
			}

			cyan := color.New(color.FgCyan)
			gray := color.New(color.FgHiBlack)
			for _, p := range pubs {
				cyan.Print(p.WalletAddress)
				if p.Primary {
					color.New(color.FgYellow).Print(" [primary]")
				}
				gray.Printf("  added %s", p.CreatedAt.Format("2006-01-02"))
				if p.AddedBy != "" {
					gray.Printf(" by %s", p.AddedBy)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func publishersAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [address]",
		Short: "Add a publisher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := adminService(cmd.Context())
			if err != nil {
				return err
			}
			pub, err := svc.AddPublisher(cmd.Context(), cfg.AdminPrimaryAddress, args[0])
			if err != nil {
				return err
			}
			color.Green("Added publisher %s", pub.WalletAddress)
			return nil
		},
	}
}

func publishersRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [address]",
		Short: "Remove a publisher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := adminService(cmd.Context())
			if err != nil {
				return err
			}
			if !assumeYes && term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Printf("Remove publisher %s? [y/N] ", args[0])
				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
					color.Yellow("Aborted")
					return nil
				}
			}
			if err := svc.RemovePublisher(cmd.Context(), cfg.AdminPrimaryAddress, args[0]); err != nil {
				return err
			}
			color.Green("Removed publisher %s", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
