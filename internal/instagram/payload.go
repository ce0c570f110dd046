package instagram

import (
	"encoding/json"
	"fmt"
)

// Payload is the verbatim body of a successful action.
type Payload json.RawMessage

func (p Payload) String() string {
	return string(p)
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return json.RawMessage(p).MarshalJSON()
}

// Decode unmarshals the payload into out.
func (p Payload) Decode(out any) error {
	return json.Unmarshal(p, out)
}

type PageInfo struct {
	HasNextPage bool   `json:"has_next_page"`
	EndCursor   string `json:"end_cursor"`
}

type edgeCount struct {
	Count int `json:"count"`
}

type MediaOwner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type MediaNode struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Caption    string     `json:"caption"`
	Date       int64      `json:"date"`
	DisplaySrc string     `json:"display_src"`
	IsVideo    bool       `json:"is_video"`
	Comments   edgeCount  `json:"comments"`
	Likes      edgeCount  `json:"likes"`
	Owner      MediaOwner `json:"owner"`
}

func (n MediaNode) LikeCount() int {
	return n.Likes.Count
}

func (n MediaNode) CommentCount() int {
	return n.Comments.Count
}

// FeedPage is one page of a /query/ media connection.
type FeedPage struct {
	Count    int         `json:"count"`
	Nodes    []MediaNode `json:"nodes"`
	PageInfo PageInfo    `json:"page_info"`
}

// Feed decodes the media connection of a feed response, which lives under
// `media` for hashtag queries and `feed.media` for the home feed.
func (p Payload) Feed() (FeedPage, error) {
	var body struct {
		Media *FeedPage `json:"media"`
		Feed  *struct {
			Media *FeedPage `json:"media"`
		} `json:"feed"`
	}
	err := p.Decode(&body)
	if err != nil {
		return FeedPage{}, fmt.Errorf("decode feed: %w", err)
	}
	if body.Media != nil {
		return *body.Media, nil
	}
	if body.Feed != nil && body.Feed.Media != nil {
		return *body.Feed.Media, nil
	}
	return FeedPage{}, fmt.Errorf("decode feed: no media connection in payload")
}
