package main

import "github.com/urfave/cli/v2"

func rawFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "raw",
		Usage: "print the raw JSON payload",
	}
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "xfetch"
	app.Usage = "Fetch posts from X (Twitter) and post replies"
	app.Before = s.load
	app.Commands = []*cli.Command{
		{
			Action:      s.tweetCmd,
			Name:        "tweet",
			Usage:       "Fetch a single tweet by ID",
			ArgsUsage:   "<tweet-id>",
			Flags:       []cli.Flag{rawFlag()},
			Category:    "Read",
			Description: `Fetches one tweet with its author, creation time and public metrics.`,
		},
		{
			Action:    s.userCmd,
			Name:      "user",
			Usage:     "Fetch recent posts from a user",
			ArgsUsage: "<handle>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "max",
					Value: 10,
					Usage: "maximum number of posts to fetch",
				},
				&cli.StringFlag{
					Name:  "reply",
					Usage: "reply to the latest fetched post with `TEXT`",
				},
				rawFlag(),
			},
			Category:    "Read",
			Description: `Fetches recent posts of a user by handle or numeric user ID, most recent first.`,
		},
		{
			Action: s.replyCmd,
			Name:   "reply",
			Usage:  "Reply to a tweet",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "user",
					Usage: "reply to this user's latest post",
				},
				&cli.StringFlag{
					Name:  "tweet-id",
					Usage: "tweet ID to reply to",
				},
				&cli.StringFlag{
					Name:     "text",
					Aliases:  []string{"t"},
					Usage:    "reply text",
					Required: true,
				},
				rawFlag(),
			},
			Category:    "Write",
			Description: `Posts a reply. Requires the OAuth 1.0a credential set in the environment.`,
		},
	}
	s.app = app
}
