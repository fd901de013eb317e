package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/xfetch-cli/xfetch/pkg/api/twitter"
)

func (s *srv) userCmd(c *cli.Context) error {
	handle := c.Args().First()
	if handle == "" {
		return errors.New("usage: xfetch user <handle>")
	}

	ctx := s.context()
	opts := twitter.PostsOptions{MaxResults: c.Int("max")}

	if c.Bool("raw") {
		raw, err := s.endpoint.GetUserPostsRaw(ctx, handle, opts)
		if err != nil {
			return err
		}
		return s.printRaw(raw)
	}

	posts, err := s.endpoint.GetUserPosts(ctx, handle, opts)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return errors.New("no posts in response")
	}
	for _, tweet := range posts {
		s.printTweet(tweet)
	}

	if text := c.String("reply"); text != "" {
		latest := posts[0]
		s.logger.Infof("Replying to latest tweet %s...", latest.ID)
		reply, err := s.endpoint.ReplyTo(ctx, latest.ID, text)
		if err != nil {
			return err
		}
		s.printReply(reply)
	}

	return nil
}
