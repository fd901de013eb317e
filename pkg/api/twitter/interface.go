package twitter

import "context"

type IEndpoint interface {
	GetTweet(ctx context.Context, tweetID string) (Tweet, error)
	GetTweetRaw(ctx context.Context, tweetID string) ([]byte, error)
	GetUser(ctx context.Context, handle string) (User, error)
	GetUserPosts(ctx context.Context, handleOrID string, opts PostsOptions) ([]Tweet, error)
	GetUserPostsRaw(ctx context.Context, handleOrID string, opts PostsOptions) ([]byte, error)
	GetLatestPost(ctx context.Context, handleOrID string) (*Tweet, error)
	ReplyTo(ctx context.Context, tweetID, text string) (Tweet, error)
	ReplyToRaw(ctx context.Context, tweetID, text string) ([]byte, error)
}
