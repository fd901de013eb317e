package twitter

import (
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/xfetch-cli/xfetch/pkg/api"
	"github.com/xfetch-cli/xfetch/pkg/errorx"
)

// Wire shapes of the API v2 response envelope. Counters arrive as float64
// in the decoded JSON, so decoding is weakly typed.

type tweetData struct {
	ID            string `mapstructure:"id"`
	Text          string `mapstructure:"text"`
	AuthorID      string `mapstructure:"author_id"`
	CreatedAt     string `mapstructure:"created_at"`
	Lang          string `mapstructure:"lang"`
	PublicMetrics struct {
		LikeCount    int `mapstructure:"like_count"`
		RetweetCount int `mapstructure:"retweet_count"`
		ReplyCount   int `mapstructure:"reply_count"`
		QuoteCount   int `mapstructure:"quote_count"`
	} `mapstructure:"public_metrics"`
}

type userData struct {
	ID            string `mapstructure:"id"`
	Name          string `mapstructure:"name"`
	Username      string `mapstructure:"username"`
	Description   string `mapstructure:"description"`
	PublicMetrics struct {
		FollowersCount int `mapstructure:"followers_count"`
		FollowingCount int `mapstructure:"following_count"`
		TweetCount     int `mapstructure:"tweet_count"`
	} `mapstructure:"public_metrics"`
}

func parseTweet(resp *api.Response) (Tweet, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return Tweet{}, errorx.WithDetail(errorx.ErrBadResponse, "unexpected body format")
	}

	data, err := body.GetJSON("data")
	if err != nil || data == nil {
		// The API reports unknown IDs as 200 with an errors array.
		return Tweet{}, errorx.WithDetail(errorx.ErrNotFound, "no tweet data in response")
	}

	var raw tweetData
	if err := decode(map[string]any(data), &raw); err != nil {
		return Tweet{}, errorx.WithDetail(errorx.ErrBadResponse, "decode tweet: %v", err)
	}
	if raw.ID == "" {
		return Tweet{}, errorx.WithDetail(errorx.ErrBadResponse, "tweet without id")
	}

	return toTweet(raw, includedHandles(body)), nil
}

func parseTweetList(resp *api.Response) ([]Tweet, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.WithDetail(errorx.ErrBadResponse, "unexpected body format")
	}

	// A user with no posts comes back without a data array.
	items, err := body.GetArray("data")
	if err != nil || items == nil {
		return nil, nil
	}

	handles := includedHandles(body)
	tweets := make([]Tweet, 0, len(items))
	for _, item := range items {
		var raw tweetData
		if err := decode(item, &raw); err != nil {
			return nil, errorx.WithDetail(errorx.ErrBadResponse, "decode tweet list: %v", err)
		}
		tweets = append(tweets, toTweet(raw, handles))
	}

	return tweets, nil
}

func parseUser(resp *api.Response, handle string) (User, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return User{}, errorx.WithDetail(errorx.ErrBadResponse, "unexpected body format")
	}

	data, err := body.GetJSON("data")
	if err != nil || data == nil {
		return User{}, errorx.WithDetail(errorx.ErrNotFound, "user not found: %s", handle)
	}

	var raw userData
	if err := decode(map[string]any(data), &raw); err != nil {
		return User{}, errorx.WithDetail(errorx.ErrBadResponse, "decode user: %v", err)
	}
	if raw.ID == "" {
		return User{}, errorx.WithDetail(errorx.ErrNotFound, "user not found: %s", handle)
	}

	return User{
		ID:          raw.ID,
		Name:        raw.Name,
		Handle:      raw.Username,
		Description: raw.Description,
		Followers:   raw.PublicMetrics.FollowersCount,
		Following:   raw.PublicMetrics.FollowingCount,
		TweetCount:  raw.PublicMetrics.TweetCount,
	}, nil
}

// includedHandles maps author IDs to handles from includes.users, filled in
// by the author_id expansion.
func includedHandles(body api.JSON) map[string]string {
	includes, err := body.GetJSON("includes")
	if err != nil || includes == nil {
		return nil
	}
	users, err := includes.GetArray("users")
	if err != nil {
		return nil
	}

	handles := make(map[string]string, len(users))
	for _, item := range users {
		var raw userData
		if decode(item, &raw) == nil && raw.ID != "" {
			handles[raw.ID] = raw.Username
		}
	}
	return handles
}

func toTweet(raw tweetData, handles map[string]string) Tweet {
	var createdAt time.Time
	if raw.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, raw.CreatedAt); err == nil {
			createdAt = t
		}
	}

	return Tweet{
		ID:           raw.ID,
		AuthorID:     raw.AuthorID,
		AuthorHandle: handles[raw.AuthorID],
		Text:         raw.Text,
		Lang:         raw.Lang,
		CreatedAt:    createdAt,
		Metrics: Metrics{
			Likes:    raw.PublicMetrics.LikeCount,
			Retweets: raw.PublicMetrics.RetweetCount,
			Replies:  raw.PublicMetrics.ReplyCount,
			Quotes:   raw.PublicMetrics.QuoteCount,
		},
	}
}

func decode(in any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
