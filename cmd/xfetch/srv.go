package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xfetch-cli/xfetch/config"
	"github.com/xfetch-cli/xfetch/pkg/api/twitter"
	"github.com/xfetch-cli/xfetch/pkg/logger"
	"github.com/xfetch-cli/xfetch/pkg/xcontext"
)

type srv struct {
	app *cli.App

	cfg      config.Configs
	logger   logger.Logger
	endpoint twitter.IEndpoint

	out io.Writer
}

// load runs before every command. Tests pre-set endpoint and out to inject
// doubles.
func (s *srv) load(*cli.Context) error {
	if err := s.loadConfig(); err != nil {
		return err
	}
	s.loadLogger()
	s.loadEndpoint()
	return nil
}

func (s *srv) loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

func (s *srv) loadLogger() {
	if s.logger == nil {
		s.logger = logger.NewLogger(logger.ParseLevel(s.cfg.LogLevel))
	}
}

func (s *srv) loadEndpoint() {
	if s.endpoint == nil {
		s.endpoint = twitter.New(s.cfg.Twitter)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
}

func (s *srv) context() context.Context {
	return xcontext.WithLogger(context.Background(), s.logger)
}
