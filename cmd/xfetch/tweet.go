package main

import (
	"errors"

	"github.com/urfave/cli/v2"
)

func (s *srv) tweetCmd(c *cli.Context) error {
	tweetID := c.Args().First()
	if tweetID == "" {
		return errors.New("usage: xfetch tweet <tweet-id>")
	}

	ctx := s.context()
	if c.Bool("raw") {
		raw, err := s.endpoint.GetTweetRaw(ctx, tweetID)
		if err != nil {
			return err
		}
		return s.printRaw(raw)
	}

	tweet, err := s.endpoint.GetTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	s.printTweet(tweet)
	return nil
}
