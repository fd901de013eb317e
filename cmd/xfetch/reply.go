package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

func (s *srv) replyCmd(c *cli.Context) error {
	user := c.String("user")
	tweetID := c.String("tweet-id")
	if (user == "") == (tweetID == "") {
		return errors.New("use exactly one of --user or --tweet-id")
	}

	ctx := s.context()
	if user != "" {
		latest, err := s.endpoint.GetLatestPost(ctx, user)
		if err != nil {
			return err
		}
		if latest == nil {
			return fmt.Errorf("no recent post found for %s", user)
		}
		s.logger.Infof("Latest post: [%s] %s",
			latest.CreatedAt.Format(time.RFC3339), snippet(latest.Text, 60))
		tweetID = latest.ID
	}

	text := c.String("text")
	if c.Bool("raw") {
		raw, err := s.endpoint.ReplyToRaw(ctx, tweetID, text)
		if err != nil {
			return err
		}
		return s.printRaw(raw)
	}

	reply, err := s.endpoint.ReplyTo(ctx, tweetID, text)
	if err != nil {
		return err
	}
	s.printReply(reply)
	return nil
}
