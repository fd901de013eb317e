package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xfetch-cli/xfetch/config"
	"github.com/xfetch-cli/xfetch/pkg/api"
	"github.com/xfetch-cli/xfetch/pkg/errorx"
)

const tweetBody = `{
	"data": {
		"id": "123",
		"text": "hello world",
		"author_id": "999",
		"created_at": "2024-01-02T15:04:05.000Z",
		"lang": "en",
		"public_metrics": {
			"like_count": 10,
			"retweet_count": 5,
			"reply_count": 3,
			"quote_count": 1
		}
	},
	"includes": {
		"users": [{"id": "999", "name": "Test User", "username": "tester"}]
	}
}`

const userBody = `{
	"data": {
		"id": "999",
		"name": "Test User",
		"username": "tester",
		"description": "hello",
		"public_metrics": {"followers_count": 100, "following_count": 50, "tweet_count": 200}
	}
}`

func readConfig() config.TwitterConfigs {
	return config.TwitterConfigs{AppAccessToken: "bearer-token"}
}

func writeConfig() config.TwitterConfigs {
	return config.TwitterConfigs{
		AppAccessToken:    "bearer-token",
		ConsumerAPIKey:    "ck",
		ConsumerAPISecret: "cs",
		AccessToken:       "at",
		AccessTokenSecret: "as",
	}
}

func response(code int, body string) *api.Response {
	resp := &api.Response{Code: code, RawBody: []byte(body)}
	decoded := api.JSON{}
	if json.Unmarshal([]byte(body), &decoded) == nil {
		resp.Body = decoded
	}
	return resp
}

// mockEndpoint wires an Endpoint to a canned per-path response table and
// records the queries and bodies it receives.
type mockEndpoint struct {
	endpoint *Endpoint

	responses map[string]*api.Response
	queries   map[string]api.Parameter
	bodies    map[string]api.Body
	calls     int
}

func newMockEndpoint(cfg config.TwitterConfigs, responses map[string]*api.Response) *mockEndpoint {
	m := &mockEndpoint{
		responses: responses,
		queries:   make(map[string]api.Parameter),
		bodies:    make(map[string]api.Body),
	}
	m.endpoint = &Endpoint{cfg: cfg, apiGenerator: m}
	return m
}

func (m *mockEndpoint) New(path string, args ...any) api.Client {
	for _, arg := range args {
		path = strings.Replace(path, "%s", arg.(string), 1)
	}

	client := &api.MockAPIClient{}
	client.QueryFunc = func(query api.Parameter) api.Client {
		m.queries[path] = query
		return client
	}
	client.BodyFunc = func(body api.Body) api.Client {
		m.bodies[path] = body
		return client
	}
	do := func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		m.calls++
		resp, ok := m.responses[path]
		if !ok {
			return nil, errors.New("unexpected path: " + path)
		}
		return resp, nil
	}
	client.GETFunc = do
	client.POSTFunc = do
	return client
}

func Test_Endpoint_GetTweet(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/tweets/123": response(200, tweetBody),
	})

	tweet, err := m.endpoint.GetTweet(context.Background(), "123")
	require.NoError(t, err)

	require.Equal(t, "123", tweet.ID)
	require.Equal(t, "hello world", tweet.Text)
	require.Equal(t, "999", tweet.AuthorID)
	require.Equal(t, "tester", tweet.AuthorHandle)
	require.Equal(t, "en", tweet.Lang)
	require.Equal(t, 2024, tweet.CreatedAt.Year())
	require.Equal(t, Metrics{Likes: 10, Retweets: 5, Replies: 3, Quotes: 1}, tweet.Metrics)

	query := m.queries["/tweets/123"]
	require.Equal(t, tweetFields, query["tweet.fields"])
	require.Equal(t, expansions, query["expansions"])
	require.Equal(t, userFields, query["user.fields"])
}

func Test_Endpoint_GetTweet_statusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   errorx.Error
	}{
		{name: "not found", status: 404, want: errorx.ErrNotFound},
		{name: "rate limited", status: 429, want: errorx.ErrRateLimited},
		{name: "unauthorized", status: 401, want: errorx.ErrUnauthorized},
		{name: "forbidden", status: 403, want: errorx.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockEndpoint(readConfig(), map[string]*api.Response{
				"/tweets/123": response(tt.status, `{"title":"upstream error"}`),
			})

			_, err := m.endpoint.GetTweet(context.Background(), "123")
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want))
		})
	}
}

func Test_Endpoint_GetTweet_noData(t *testing.T) {
	// Unknown IDs come back as 200 with an errors array instead of data.
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/tweets/123": response(200, `{"errors":[{"title":"Not Found Error"}]}`),
	})

	_, err := m.endpoint.GetTweet(context.Background(), "123")
	require.Error(t, err)
	require.True(t, errors.Is(err, errorx.ErrNotFound))
}

func Test_Endpoint_GetTweet_noBearer(t *testing.T) {
	m := newMockEndpoint(config.TwitterConfigs{}, nil)

	_, err := m.endpoint.GetTweet(context.Background(), "123")
	require.True(t, errors.Is(err, errorx.ErrNoCredentials))
	require.Zero(t, m.calls)
}

func Test_Endpoint_GetTweetRaw(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/tweets/123": response(200, tweetBody),
	})

	raw, err := m.endpoint.GetTweetRaw(context.Background(), "123")
	require.NoError(t, err)
	require.Equal(t, []byte(tweetBody), raw)
}

func Test_Endpoint_GetUser(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/by/username/tester": response(200, userBody),
	})

	user, err := m.endpoint.GetUser(context.Background(), "@tester")
	require.NoError(t, err)
	require.Equal(t, "999", user.ID)
	require.Equal(t, "tester", user.Handle)
	require.Equal(t, "Test User", user.Name)
	require.Equal(t, 100, user.Followers)
	require.Equal(t, 50, user.Following)
	require.Equal(t, 200, user.TweetCount)
}

func Test_Endpoint_GetUser_notFound(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/by/username/nobody": response(200, `{"errors":[{"title":"Not Found Error"}]}`),
	})

	_, err := m.endpoint.GetUser(context.Background(), "nobody")
	require.Error(t, err)
	require.True(t, errors.Is(err, errorx.ErrNotFound))
}

func postsBody(n int) string {
	var items []string
	for i := n; i > 0; i-- {
		items = append(items, `{"id":"`+itoa(i)+`","text":"post","author_id":"999","created_at":"2024-01-02T15:04:05Z"}`)
	}
	return `{"data":[` + strings.Join(items, ",") + `],"includes":{"users":[{"id":"999","username":"tester"}]},"meta":{"result_count":` + itoa(n) + `}}`
}

func Test_Endpoint_GetUserPosts(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/by/username/tester": response(200, userBody),
		"/users/999/tweets":         response(200, postsBody(3)),
	})

	posts, err := m.endpoint.GetUserPosts(context.Background(), "tester", PostsOptions{MaxResults: 5})
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Upstream order is preserved, most recent first.
	require.Equal(t, "3", posts[0].ID)
	require.Equal(t, "1", posts[2].ID)
	require.Equal(t, "tester", posts[0].AuthorHandle)

	require.Equal(t, "5", m.queries["/users/999/tweets"]["max_results"])
}

func Test_Endpoint_GetUserPosts_bounded(t *testing.T) {
	// Even if the upstream overshoots, never return more than MaxResults.
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/999/tweets": response(200, postsBody(7)),
	})

	posts, err := m.endpoint.GetUserPosts(context.Background(), "999", PostsOptions{MaxResults: 5})
	require.NoError(t, err)
	require.Len(t, posts, 5)
}

func Test_Endpoint_GetUserPosts_numericID(t *testing.T) {
	// A numeric input is used as the user ID without handle resolution.
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/999/tweets": response(200, postsBody(1)),
	})

	posts, err := m.endpoint.GetUserPosts(context.Background(), "999", PostsOptions{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotContains(t, m.queries, "/users/by/username/999")
}

func Test_Endpoint_GetUserPosts_clamp(t *testing.T) {
	tests := []struct {
		name string
		max  int
		want string
	}{
		{name: "zero means default", max: 0, want: "10"},
		{name: "below floor", max: -3, want: "1"},
		{name: "above ceiling", max: 500, want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockEndpoint(readConfig(), map[string]*api.Response{
				"/users/999/tweets": response(200, postsBody(1)),
			})

			_, err := m.endpoint.GetUserPosts(context.Background(), "999", PostsOptions{MaxResults: tt.max})
			require.NoError(t, err)
			require.Equal(t, tt.want, m.queries["/users/999/tweets"]["max_results"])
		})
	}
}

func Test_Endpoint_GetLatestPost(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/999/tweets": response(200, postsBody(1)),
	})

	latest, err := m.endpoint.GetLatestPost(context.Background(), "999")
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "1", latest.ID)

	query := m.queries["/users/999/tweets"]
	require.Equal(t, "1", query["max_results"])
	require.Equal(t, "replies,retweets", query["exclude"])
}

func Test_Endpoint_GetLatestPost_empty(t *testing.T) {
	m := newMockEndpoint(readConfig(), map[string]*api.Response{
		"/users/999/tweets": response(200, `{"meta":{"result_count":0}}`),
	})

	latest, err := m.endpoint.GetLatestPost(context.Background(), "999")
	require.NoError(t, err)
	require.Nil(t, latest)
}

func Test_Endpoint_ReplyTo(t *testing.T) {
	m := newMockEndpoint(writeConfig(), map[string]*api.Response{
		"/tweets": response(201, `{"data":{"id":"456","text":"my reply"}}`),
	})

	reply, err := m.endpoint.ReplyTo(context.Background(), "123", "my reply")
	require.NoError(t, err)
	require.Equal(t, "456", reply.ID)
	require.Equal(t, "my reply", reply.Text)

	body, ok := m.bodies["/tweets"].(api.JSON)
	require.True(t, ok)
	require.Equal(t, "my reply", body["text"])
	require.Equal(t, map[string]string{"in_reply_to_tweet_id": "123"}, body["reply"])
}

func Test_Endpoint_ReplyTo_noWriteCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TwitterConfigs
	}{
		{name: "nothing set", cfg: config.TwitterConfigs{}},
		{name: "bearer only", cfg: readConfig()},
		{
			name: "missing token secret",
			cfg: config.TwitterConfigs{
				AppAccessToken:    "bearer-token",
				ConsumerAPIKey:    "ck",
				ConsumerAPISecret: "cs",
				AccessToken:       "at",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockEndpoint(tt.cfg, nil)

			_, err := m.endpoint.ReplyTo(context.Background(), "123", "text")
			require.Error(t, err)
			require.True(t, errors.Is(err, errorx.ErrNoWriteCredentials))
			require.Zero(t, m.calls)
		})
	}
}

func Test_Endpoint_ReplyTo_tooLong(t *testing.T) {
	m := newMockEndpoint(writeConfig(), nil)

	_, err := m.endpoint.ReplyTo(context.Background(), "123", strings.Repeat("x", 281))
	require.Error(t, err)
	require.True(t, errors.Is(err, errorx.ErrReplyTooLong))
	require.Zero(t, m.calls)
}

func Test_Endpoint_ReplyToRaw(t *testing.T) {
	payload := `{"data":{"id":"456","text":"my reply"}}`
	m := newMockEndpoint(writeConfig(), map[string]*api.Response{
		"/tweets": response(201, payload),
	})

	raw, err := m.endpoint.ReplyToRaw(context.Background(), "123", "my reply")
	require.NoError(t, err)
	require.Equal(t, []byte(payload), raw)
}
