package instagram

import (
	"strconv"
	"strings"
)

// Template is a request body with `{{name}}` markers.
type Template string

// Param is a single marker substitution.
type Param struct {
	Name  string
	Value string
}

func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

func marker(name string) string {
	return "{{" + name + "}}"
}

// Render substitutes params in the order given. Only the first occurrence of
// each marker is replaced, a marker without a param is left untouched.
func (t Template) Render(params ...Param) string {
	out := string(t)
	for _, p := range params {
		out = strings.Replace(out, marker(p.Name), p.Value, 1)
	}
	return out
}

// Markers returns how many times the marker `name` occurs in the template.
func (t Template) Markers(name string) int {
	return strings.Count(string(t), marker(name))
}

const (
	markerHashtag     = "hashtag"
	markerStartCursor = "start_cursor"
	markerCount       = "count"
)

type Queries struct {
	SelfFeed    Template
	HashtagFeed Template
}

func (q Queries) selfFeed(startCursor string, count int) string {
	return q.SelfFeed.Render(
		P(markerStartCursor, startCursor),
		P(markerCount, strconv.Itoa(count)),
	)
}

func (q Queries) hashtagFeed(hashtag, startCursor string, count int) string {
	return q.HashtagFeed.Render(
		P(markerHashtag, hashtag),
		P(markerStartCursor, startCursor),
		P(markerCount, strconv.Itoa(count)),
	)
}

const mediaNodeFields = "nodes { id, code, caption, date, display_src, is_video, " +
	"comments { count }, likes { count }, owner { id, username } }, page_info"

const selfFeedQuery = "q=ig_me() { feed { media.after({{start_cursor}}, {{count}}) { " +
	mediaNodeFields + " } }, id, profile_pic_url, username }&ref=feed::show"

const hashtagFeedQuery = "q=ig_hashtag({{hashtag}}) { media.after({{start_cursor}}, {{count}}) { count, " +
	mediaNodeFields + " } }&ref=tags::show"

// DefaultQueries returns the /query/ bodies for the home feed and hashtag pages.
func DefaultQueries() Queries {
	return Queries{
		SelfFeed:    selfFeedQuery,
		HashtagFeed: hashtagFeedQuery,
	}
}
