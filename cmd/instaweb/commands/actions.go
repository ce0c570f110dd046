package commands

import (
	"fmt"
	"strings"

	"instaweb/internal/instagram"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
}

func printPayload(cmd *cobra.Command, payload instagram.Payload) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), payload.String())
	return err
}

var likeCmd = &cobra.Command{
	Use:   "like <media-id>",
	Short: "Likes a post.",
	Args:  cobra.ExactArgs(1),
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, args []string) error {
		payload, err := client.SetLike(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printPayload(cmd, payload)
	}),
}

var commentCmd = &cobra.Command{
	Use:   "comment <media-id> <text...>",
	Short: "Comments on a post, remaining arguments are joined with spaces.",
	Args:  cobra.MinimumNArgs(2),
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, args []string) error {
		payload, err := client.SetComment(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return printPayload(cmd, payload)
	}),
}

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follows a user.",
	Args:  cobra.ExactArgs(1),
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, args []string) error {
		payload, err := client.SetFollow(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printPayload(cmd, payload)
	}),
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Short: "Unfollows a user.",
	Args:  cobra.ExactArgs(1),
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, args []string) error {
		payload, err := client.UnsetFollow(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printPayload(cmd, payload)
	}),
}
