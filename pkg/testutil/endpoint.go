package testutil

import (
	"context"
	"errors"

	"github.com/xfetch-cli/xfetch/pkg/api/twitter"
)

type MockTwitterEndpoint struct {
	GetTweetFunc        func(context.Context, string) (twitter.Tweet, error)
	GetTweetRawFunc     func(context.Context, string) ([]byte, error)
	GetUserFunc         func(context.Context, string) (twitter.User, error)
	GetUserPostsFunc    func(context.Context, string, twitter.PostsOptions) ([]twitter.Tweet, error)
	GetUserPostsRawFunc func(context.Context, string, twitter.PostsOptions) ([]byte, error)
	GetLatestPostFunc   func(context.Context, string) (*twitter.Tweet, error)
	ReplyToFunc         func(context.Context, string, string) (twitter.Tweet, error)
	ReplyToRawFunc      func(context.Context, string, string) ([]byte, error)
}

func (e *MockTwitterEndpoint) GetTweet(ctx context.Context, tweetID string) (twitter.Tweet, error) {
	if e.GetTweetFunc != nil {
		return e.GetTweetFunc(ctx, tweetID)
	}

	return twitter.Tweet{}, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) GetTweetRaw(ctx context.Context, tweetID string) ([]byte, error) {
	if e.GetTweetRawFunc != nil {
		return e.GetTweetRawFunc(ctx, tweetID)
	}

	return nil, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) GetUser(ctx context.Context, handle string) (twitter.User, error) {
	if e.GetUserFunc != nil {
		return e.GetUserFunc(ctx, handle)
	}

	return twitter.User{}, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) GetUserPosts(ctx context.Context, handleOrID string, opts twitter.PostsOptions) ([]twitter.Tweet, error) {
	if e.GetUserPostsFunc != nil {
		return e.GetUserPostsFunc(ctx, handleOrID, opts)
	}

	return nil, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) GetUserPostsRaw(ctx context.Context, handleOrID string, opts twitter.PostsOptions) ([]byte, error) {
	if e.GetUserPostsRawFunc != nil {
		return e.GetUserPostsRawFunc(ctx, handleOrID, opts)
	}

	return nil, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) GetLatestPost(ctx context.Context, handleOrID string) (*twitter.Tweet, error) {
	if e.GetLatestPostFunc != nil {
		return e.GetLatestPostFunc(ctx, handleOrID)
	}

	return nil, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) ReplyTo(ctx context.Context, tweetID, text string) (twitter.Tweet, error) {
	if e.ReplyToFunc != nil {
		return e.ReplyToFunc(ctx, tweetID, text)
	}

	return twitter.Tweet{}, errors.New("not implemented")
}

func (e *MockTwitterEndpoint) ReplyToRaw(ctx context.Context, tweetID, text string) ([]byte, error) {
	if e.ReplyToRawFunc != nil {
		return e.ReplyToRawFunc(ctx, tweetID, text)
	}

	return nil, errors.New("not implemented")
}
