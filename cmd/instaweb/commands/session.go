package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"instaweb/internal/instagram"

	"github.com/spf13/cobra"
)

var (
	loginUsername *string
	loginPassword *string
)

func init() {
	loginUsername = loginCmd.Flags().String("username", "", "Overrides the username in the config.")
	loginPassword = loginCmd.Flags().String("password", "", "Overrides the password in the config.")

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(loginCmd)
}

func printSession(out io.Writer, tokens instagram.Tokens) error {
	encoded, err := json.MarshalIndent(struct {
		Session instagram.Tokens `json:"session"`
	}{Session: tokens}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Fetches the csrf and mid tokens from the unauthenticated root page.",
	Args:  cobra.NoArgs,
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, _ []string) error {
		tokens, err := client.GrabTokens(cmd.Context())
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), tokens)
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login [--username <name>] [--password <password>]",
	Short: "Logs in and prints the session, paste it into config.local.json5 to reuse it.",
	Args:  cobra.NoArgs,
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, cfg Config, _ []string) error {
		username := cfg.Username
		if *loginUsername != "" {
			username = *loginUsername
		}
		password := cfg.Password
		if *loginPassword != "" {
			password = *loginPassword
		}
		if username == "" || password == "" {
			return fmt.Errorf("login: username and password are required")
		}

		session := client.Session()
		if session.CSRF == "" || session.Mid == "" {
			_, err := client.GrabTokens(cmd.Context())
			if err != nil {
				return err
			}
		}

		tokens, err := client.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), tokens)
	}),
}
