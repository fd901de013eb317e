package twitter

import (
	"context"
	"unicode/utf8"

	"github.com/dghubble/oauth1"

	"github.com/xfetch-cli/xfetch/config"
	"github.com/xfetch-cli/xfetch/pkg/api"
	"github.com/xfetch-cli/xfetch/pkg/errorx"
	"github.com/xfetch-cli/xfetch/pkg/xcontext"
)

const (
	tweetFields = "created_at,author_id,public_metrics,text,lang"
	userFields  = "username,name,description,public_metrics"
	expansions  = "author_id"

	maxReplyLen = 280
)

type Endpoint struct {
	apiGenerator api.Generator
	cfg          config.TwitterConfigs
}

func New(cfg config.TwitterConfigs) *Endpoint {
	return &Endpoint{
		apiGenerator: api.NewGenerator(cfg.APIEndpoints...),
		cfg:          cfg,
	}
}

// GetTweet fetches a single tweet by ID. The author handle is resolved from
// the author_id expansion when the API includes it.
func (e *Endpoint) GetTweet(ctx context.Context, tweetID string) (Tweet, error) {
	resp, err := e.getTweet(ctx, tweetID)
	if err != nil {
		return Tweet{}, err
	}

	return parseTweet(resp)
}

// GetTweetRaw fetches a single tweet and returns the upstream payload
// untouched.
func (e *Endpoint) GetTweetRaw(ctx context.Context, tweetID string) ([]byte, error) {
	resp, err := e.getTweet(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	return resp.RawBody, nil
}

func (e *Endpoint) getTweet(ctx context.Context, tweetID string) (*api.Response, error) {
	if !e.cfg.CanRead() {
		return nil, errorx.ErrNoCredentials
	}

	resp, err := e.apiGenerator.New("/tweets/%s", tweetID).
		Query(api.Parameter{
			"tweet.fields": tweetFields,
			"expansions":   expansions,
			"user.fields":  userFields,
		}).
		GET(ctx, api.Bearer(e.cfg.AppAccessToken))
	if err != nil {
		return nil, err
	}

	return resp, checkStatus(ctx, resp)
}

// GetUser resolves a handle (leading @ allowed) to a user profile.
func (e *Endpoint) GetUser(ctx context.Context, handle string) (User, error) {
	if !e.cfg.CanRead() {
		return User{}, errorx.ErrNoCredentials
	}

	handle = normalizeHandle(handle)
	resp, err := e.apiGenerator.New("/users/by/username/%s", handle).
		GET(ctx, api.Bearer(e.cfg.AppAccessToken))
	if err != nil {
		return User{}, err
	}
	if err := checkStatus(ctx, resp); err != nil {
		return User{}, err
	}

	return parseUser(resp, handle)
}

// GetUserPosts fetches up to opts.MaxResults recent posts of a user, most
// recent first. A numeric input is treated as a user ID, anything else is
// resolved through GetUser first.
func (e *Endpoint) GetUserPosts(ctx context.Context, handleOrID string, opts PostsOptions) ([]Tweet, error) {
	resp, err := e.getUserPosts(ctx, handleOrID, &opts)
	if err != nil {
		return nil, err
	}

	tweets, err := parseTweetList(resp)
	if err != nil {
		return nil, err
	}
	if len(tweets) > opts.MaxResults {
		tweets = tweets[:opts.MaxResults]
	}

	return tweets, nil
}

// GetUserPostsRaw is GetUserPosts without decoding, for raw output mode.
func (e *Endpoint) GetUserPostsRaw(ctx context.Context, handleOrID string, opts PostsOptions) ([]byte, error) {
	resp, err := e.getUserPosts(ctx, handleOrID, &opts)
	if err != nil {
		return nil, err
	}

	return resp.RawBody, nil
}

func (e *Endpoint) getUserPosts(ctx context.Context, handleOrID string, opts *PostsOptions) (*api.Response, error) {
	if !e.cfg.CanRead() {
		return nil, errorx.ErrNoCredentials
	}

	opts.clamp()

	userID := normalizeHandle(handleOrID)
	if !isNumeric(userID) {
		user, err := e.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		userID = user.ID
	}

	query := api.Parameter{
		"max_results":  itoa(opts.MaxResults),
		"tweet.fields": tweetFields,
		"expansions":   expansions,
		"user.fields":  userFields,
	}
	if exclude := opts.excludeValue(); exclude != "" {
		query["exclude"] = exclude
	}

	resp, err := e.apiGenerator.New("/users/%s/tweets", userID).
		Query(query).
		GET(ctx, api.Bearer(e.cfg.AppAccessToken))
	if err != nil {
		return nil, err
	}

	return resp, checkStatus(ctx, resp)
}

// GetLatestPost returns the most recent original post of a user, or nil if
// the user has no posts. Replies and retweets are excluded.
func (e *Endpoint) GetLatestPost(ctx context.Context, handleOrID string) (*Tweet, error) {
	tweets, err := e.GetUserPosts(ctx, handleOrID, PostsOptions{
		MaxResults:      1,
		ExcludeReplies:  true,
		ExcludeRetweets: true,
	})
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return nil, nil
	}

	return &tweets[0], nil
}

// ReplyTo creates a new post referencing tweetID as its parent. It requires
// the full OAuth 1.0a credential set and fails before any network call when
// it is incomplete.
func (e *Endpoint) ReplyTo(ctx context.Context, tweetID, text string) (Tweet, error) {
	resp, err := e.replyTo(ctx, tweetID, text)
	if err != nil {
		return Tweet{}, err
	}

	return parseTweet(resp)
}

// ReplyToRaw is ReplyTo without decoding, for raw output mode.
func (e *Endpoint) ReplyToRaw(ctx context.Context, tweetID, text string) ([]byte, error) {
	resp, err := e.replyTo(ctx, tweetID, text)
	if err != nil {
		return nil, err
	}

	return resp.RawBody, nil
}

func (e *Endpoint) replyTo(ctx context.Context, tweetID, text string) (*api.Response, error) {
	if !e.cfg.CanWrite() {
		return nil, errorx.ErrNoWriteCredentials
	}
	if utf8.RuneCountInString(text) > maxReplyLen {
		return nil, errorx.ErrReplyTooLong
	}

	resp, err := e.apiGenerator.New("/tweets").
		Body(api.JSON{
			"text":  text,
			"reply": map[string]string{"in_reply_to_tweet_id": tweetID},
		}).
		POST(e.signedContext(ctx))
	if err != nil {
		return nil, err
	}

	return resp, checkStatus(ctx, resp)
}

// signedContext swaps the context HTTP client for one that OAuth1-signs
// every request, keeping the original client as the signing transport base.
func (e *Endpoint) signedContext(ctx context.Context) context.Context {
	conf := oauth1.NewConfig(e.cfg.ConsumerAPIKey, e.cfg.ConsumerAPISecret)
	token := oauth1.NewToken(e.cfg.AccessToken, e.cfg.AccessTokenSecret)

	base := context.WithValue(ctx, oauth1.HTTPClient, xcontext.HTTPClient(ctx))
	return xcontext.WithHTTPClient(ctx, conf.Client(base, token))
}
