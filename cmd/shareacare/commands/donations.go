package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/common"
)

func donationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "Donation bookkeeping",
	}
	cmd.AddCommand(donationsRecordCmd(), donationsTopCmd())
	return cmd
}

func donationsRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record [project-id] [donor-address] [amount]",
		Short: "Record a donation made on-chain (bookkeeping only, no transfer)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := st.RecordDonation(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			color.Green("Recorded %s from %s", common.FormatCARES(d.Amount), address.FormatForDisplay(d.DonorAddress))
			return nil
		},
	}
}

func donationsTopCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the donor leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			donors, err := st.ListTopDonors(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for i, d := range donors {
				fmt.Printf("%d. ", i+1)
				color.New(color.FgCyan).Print(address.FormatForDisplay(d.Address))
				fmt.Printf("  %s  (%d projects)\n", common.FormatCARES(d.TotalDonated), len(d.ProjectsSupported))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of donors")
	return cmd
}
