package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"attendctl/internal/config"
	"attendctl/internal/session"
	"attendctl/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	email := loginEmail
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fail(fmt.Errorf("reading email: %w", err))
		}
		email = strings.TrimSpace(line)
	}

	password := loginPassword
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fail(fmt.Errorf("reading password: %w", err))
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if err := validate.Credentials(email, password); err != nil {
		fail(err)
	}

	client, _, err := newClient(false)
	if err != nil {
		fail(err)
	}

	token, identity, err := client.Login(context.Background(), email, password)
	if err != nil {
		fail(err)
	}

	base, err := config.BaseDir()
	if err != nil {
		fail(err)
	}
	if err := session.Save(base, token, identity); err != nil {
		fail(err)
	}

	fmt.Printf("Logged in as %s (%s)\n", identity.Name, identity.Role)
	fmt.Println(navigationRoot(identity.Role))
	return nil
}

// navigationRoot tells the user which command set their role lands on.
func navigationRoot(role string) string {
	if role == "admin" {
		return `Admin commands are available under "attendctl admin".`
	}
	return `Employee commands: check-in, check-out, status, history, profile.`
}
