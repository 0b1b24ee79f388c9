package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or change the persisted wallet session",
	}
	cmd.AddCommand(sessionShowCmd(), sessionConnectCmd(), sessionDisconnectCmd())
	return cmd
}

func printState(state wallet.State) {
	if !state.Connected {
		color.Yellow("Not connected")
		return
	}
	fmt.Print("Connected: ")
	color.New(color.FgCyan).Println(state.Address)
	fmt.Printf("Display:   %s\n", address.FormatForDisplay(state.Address))
	if sum, err := address.Checksum(state.Address); err == nil {
		fmt.Printf("Checksum:  %s\n", sum)
	}
}

func sessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := wallet.New(st, nil, logger)
			state, err := session.Initialize(cmd.Context())
			if err != nil {
				return err
			}
			printState(state)
			return nil
		},
	}
}

func sessionConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [address]",
		Short: "Connect an address, or ask the wallet provider when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var prov wallet.Provider
			if len(args) == 0 {
				p, closeProvider := dialProvider(ctx)
				defer closeProvider()
				prov = p
			}

			session := wallet.New(st, prov, logger)
			if _, err := session.Initialize(ctx); err != nil {
				return err
			}
			defer session.Close()

			var (
				state wallet.State
				err   error
			)
			if len(args) == 1 {
				state, err = session.Connect(ctx, args[0])
			} else {
				state, err = session.RequestConnect(ctx)
			}
			if err != nil {
				return err
			}
			printState(state)
			return nil
		},
	}
}

func sessionDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := wallet.New(st, nil, logger)
			if _, err := session.Initialize(cmd.Context()); err != nil {
				return err
			}
			state, err := session.Disconnect(cmd.Context())
			if err != nil {
				return err
			}
			printState(state)
			return nil
		},
	}
}
