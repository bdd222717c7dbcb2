package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Review and decide pending registrations",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersApproveCmd(), newUsersRejectCmd())
	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registrations awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cred, err := connect()
			if err != nil {
				return err
			}
			pending, err := client.ListPendingUsers(cmd.Context(), cred)
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("No registrations waiting for review.")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tREGISTERED")
			for _, u := range pending {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
			}
			return tw.Flush()
		},
	}
}

func newUsersApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			client, cred, err := connect()
			if err != nil {
				return err
			}
			if err := client.ApproveUser(cmd.Context(), cred, id); err != nil {
				return err
			}
			fmt.Printf("User %d approved.\n", id)
			return nil
		},
	}
}

func newUsersRejectCmd() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			client, cred, err := connect()
			if err != nil {
				return err
			}
			if err := client.RejectUser(cmd.Context(), cred, id, reason); err != nil {
				return err
			}
			fmt.Printf("User %d rejected.\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason shown to the applicant")
	return cmd
}
