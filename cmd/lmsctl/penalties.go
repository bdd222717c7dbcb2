package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPenaltiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "penalties",
		Short: "Inspect and reconcile penalties",
	}
	cmd.AddCommand(newPenaltiesListCmd(), newPenaltiesReconcileCmd())
	return cmd
}

func newPenaltiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List penalties awaiting payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cred, err := connect()
			if err != nil {
				return err
			}
			penalties, err := client.PendingPenalties(cmd.Context(), cred)
			if err != nil {
				return err
			}
			if len(penalties) == 0 {
				fmt.Println("No outstanding penalties.")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RECORD\tSTUDENT\tBOOK\tTYPE\tAMOUNT\tSTATUS")
			total := 0.0
			for _, p := range penalties {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
					p.BorrowRecordID, p.StudentName, p.BookTitle, p.Type, p.Amount, p.Status)
				total += p.Amount
			}
			fmt.Fprintf(tw, "\t\t\t\t%.2f\ttotal\n", total)
			return tw.Flush()
		},
	}
}

func newPenaltiesReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute penalties for all overdue loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cred, err := connect()
			if err != nil {
				return err
			}
			if err := client.ReconcilePenalties(cmd.Context(), cred); err != nil {
				return err
			}
			fmt.Println("Penalty reconciliation triggered.")
			return nil
		},
	}
}
