// lmsctl is the operator's command line for the library backend. It
// authenticates with Basic credentials, prompting for the password so
// it never lands in shell history.
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lmsportal/internal/api"
	"lmsportal/internal/session"
)

var (
	backendURL string
	adminEmail string
)

func main() {
	_ = godotenv.Load(".env.local")

	root := &cobra.Command{
		Use:           "lmsctl",
		Short:         "Administer the library backend from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&backendURL, "backend", os.Getenv("BACKEND_URL"), "backend base URL")
	root.PersistentFlags().StringVar(&adminEmail, "email", os.Getenv("ADMIN_EMAIL"), "administrator email")

	root.AddCommand(newUsersCmd())
	root.AddCommand(newPenaltiesCmd())
	root.AddCommand(newReportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lmsctl:", api.Message(err))
		os.Exit(1)
	}
}

// connect builds the client and the admin credential, prompting for the
// password on the terminal.
func connect() (*api.Client, session.Credential, error) {
	if backendURL == "" {
		return nil, session.Credential{}, fmt.Errorf("backend URL required (--backend or BACKEND_URL)")
	}
	if adminEmail == "" {
		return nil, session.Credential{}, fmt.Errorf("administrator email required (--email or ADMIN_EMAIL)")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Fprintf(os.Stderr, "Password for %s: ", adminEmail)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, session.Credential{}, fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	}

	return api.NewClient(backendURL, 10), session.BasicCredential(adminEmail, password), nil
}
