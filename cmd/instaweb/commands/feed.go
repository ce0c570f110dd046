package commands

import (
	"fmt"
	"io"
	"time"

	"instaweb/internal/instagram"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type feedFlags struct {
	cursor *string
	count  *int
	raw    *bool
}

func registerFeedFlags(cmd *cobra.Command) feedFlags {
	return feedFlags{
		cursor: cmd.Flags().String("cursor", "", "The end_cursor of the previous page."),
		count:  cmd.Flags().Int("count", 12, "The number of posts to fetch."),
		raw:    cmd.Flags().Bool("raw", false, "Print the response body instead of a table."),
	}
}

var (
	selfFeedFlags    feedFlags
	hashtagFeedFlags feedFlags
)

func init() {
	selfFeedFlags = registerFeedFlags(feedCmd)
	hashtagFeedFlags = registerFeedFlags(hashtagCmd)

	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(hashtagCmd)
}

func renderFeed(out io.Writer, page instagram.FeedPage) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"id", "code", "owner", "date", "likes", "comments", "caption"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "caption", WidthMax: 60},
	})
	for _, node := range page.Nodes {
		date := ""
		if node.Date > 0 {
			date = time.Unix(node.Date, 0).UTC().Format(time.DateTime)
		}
		tw.AppendRow(table.Row{
			node.ID,
			node.Code,
			node.Owner.ID,
			date,
			node.LikeCount(),
			node.CommentCount(),
			node.Caption,
		})
	}
	if page.PageInfo.HasNextPage {
		tw.AppendFooter(table.Row{"next", page.PageInfo.EndCursor})
	}
	tw.Render()
}

func printFeed(cmd *cobra.Command, flags feedFlags, payload instagram.Payload) error {
	if *flags.raw {
		return printPayload(cmd, payload)
	}
	page, err := payload.Feed()
	if err != nil {
		return fmt.Errorf("%w (use --raw to see the response)", err)
	}
	renderFeed(cmd.OutOrStdout(), page)
	return nil
}

var feedCmd = &cobra.Command{
	Use:   "feed [--cursor <cursor>] [--count <n>]",
	Short: "Lists the logged in user's home feed.",
	Args:  cobra.NoArgs,
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, _ []string) error {
		payload, err := client.GetSelfFeed(cmd.Context(), *selfFeedFlags.cursor, *selfFeedFlags.count)
		if err != nil {
			return err
		}
		return printFeed(cmd, selfFeedFlags, payload)
	}),
}

var hashtagCmd = &cobra.Command{
	Use:   "hashtag <tag> [--cursor <cursor>] [--count <n>]",
	Short: "Lists the posts of a hashtag.",
	Args:  cobra.ExactArgs(1),
	RunE: clientCommand(func(cmd *cobra.Command, client *instagram.Client, _ Config, args []string) error {
		payload, err := client.GetFeedByHashtag(cmd.Context(), args[0], *hashtagFeedFlags.cursor, *hashtagFeedFlags.count)
		if err != nil {
			return err
		}
		return printFeed(cmd, hashtagFeedFlags, payload)
	}),
}
