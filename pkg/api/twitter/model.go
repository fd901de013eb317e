package twitter

import "time"

type User struct {
	ID          string
	Name        string
	Handle      string
	Description string
	Followers   int
	Following   int
	TweetCount  int
}

type Metrics struct {
	Likes    int
	Retweets int
	Replies  int
	Quotes   int
}

type Tweet struct {
	ID           string
	AuthorID     string
	AuthorHandle string
	Text         string
	Lang         string
	CreatedAt    time.Time
	Metrics      Metrics
}

// PostsOptions controls a GetUserPosts call.
type PostsOptions struct {
	// MaxResults is the page size, clamped to [1, 100]. Zero means 10.
	MaxResults int

	ExcludeReplies  bool
	ExcludeRetweets bool
}

func (o *PostsOptions) clamp() {
	if o.MaxResults == 0 {
		o.MaxResults = 10
	}
	if o.MaxResults < 1 {
		o.MaxResults = 1
	}
	if o.MaxResults > 100 {
		o.MaxResults = 100
	}
}

func (o PostsOptions) excludeValue() string {
	switch {
	case o.ExcludeReplies && o.ExcludeRetweets:
		return "replies,retweets"
	case o.ExcludeReplies:
		return "replies"
	case o.ExcludeRetweets:
		return "retweets"
	default:
		return ""
	}
}
