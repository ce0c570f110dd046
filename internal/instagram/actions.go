package instagram

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) SetLike(ctx context.Context, mediaId string) (payload Payload, err error) {
	ctx, span := c.start(ctx, "SetLike")
	defer func() { c.finish(ctx, span, report_client_set_like, err) }()

	return c.action(ctx, report_client_set_like, fmt.Sprintf(likePath, url.PathEscape(mediaId)), "")
}

// SetComment posts text as a comment, the text is form encoded.
func (c *Client) SetComment(ctx context.Context, mediaId, text string) (payload Payload, err error) {
	ctx, span := c.start(ctx, "SetComment")
	defer func() { c.finish(ctx, span, report_client_set_comment, err) }()

	body := url.Values{"comment_text": {text}}.Encode()
	return c.action(ctx, report_client_set_comment, fmt.Sprintf(commentPath, url.PathEscape(mediaId)), body)
}

func (c *Client) SetFollow(ctx context.Context, userId string) (payload Payload, err error) {
	ctx, span := c.start(ctx, "SetFollow")
	defer func() { c.finish(ctx, span, report_client_set_follow, err) }()

	return c.action(ctx, report_client_set_follow, fmt.Sprintf(followPath, url.PathEscape(userId)), "")
}

func (c *Client) UnsetFollow(ctx context.Context, userId string) (payload Payload, err error) {
	ctx, span := c.start(ctx, "UnsetFollow")
	defer func() { c.finish(ctx, span, report_client_unset_follow, err) }()

	return c.action(ctx, report_client_unset_follow, fmt.Sprintf(unfollowPath, url.PathEscape(userId)), "")
}

// GetSelfFeed fetches `count` items of the logged in user's home feed after
// startCursor. The cursor is passed through as-is, an empty one starts at the top.
func (c *Client) GetSelfFeed(ctx context.Context, startCursor string, count int) (payload Payload, err error) {
	ctx, span := c.start(ctx, "GetSelfFeed")
	defer func() { c.finish(ctx, span, report_client_get_self_feed, err) }()

	return c.action(ctx, report_client_get_self_feed, queryPath, c.queries.selfFeed(startCursor, count))
}

func (c *Client) GetFeedByHashtag(ctx context.Context, hashtag, startCursor string, count int) (payload Payload, err error) {
	ctx, span := c.start(ctx, "GetFeedByHashtag")
	defer func() { c.finish(ctx, span, report_client_get_feed_by_hashtag, err) }()

	return c.action(ctx, report_client_get_feed_by_hashtag, queryPath, c.queries.hashtagFeed(hashtag, startCursor, count))
}
