package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/app"
	"github.com/kailas-cloud/cardex/internal/config"
	logpkg "github.com/kailas-cloud/cardex/internal/logger"
	sessionrepo "github.com/kailas-cloud/cardex/internal/repository/session"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
	"github.com/kailas-cloud/cardex/internal/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "cardex-cli",
		Usage:   "Search and browse articles and restaurants from the terminal",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "Config environment (config/<env>.yaml)",
				Value:   config.GetEnv(),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "Override the article search engine (keyword, dense, mix)",
			},
		},
		Action: runREPL,
	}
}

func runREPL(c *cli.Context) error {
	env := c.String("env")
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if engine := c.String("engine"); engine != "" {
		cfg.Backends.Articles.Engine = engine
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid engine: %w", err)
		}
	}

	logger, err := logpkg.NewLogger(env, c.String("log-level"))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := logpkg.ContextWithLogger(c.Context, logger)
	stores := app.Stores{Sessions: sessionrepo.NewMemoryStore(1, 0), Close: func() {}}
	svc := app.NewCommandService(cfg.Backends, stores, logger)
	return repl(ctx, svc, c.App.Reader, c.App.Writer)
}

// runner is what repl needs from the command service.
type runner interface {
	Handle(ctx context.Context, id, raw string) (commanduc.Outcome, error)
}

// repl reads one command per line until EOF or quit.
func repl(ctx context.Context, svc *commanduc.Service, in io.Reader, out io.Writer) error {
	sess, err := svc.Start(ctx)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	logpkg.FromContext(ctx).Debug("Session ready", zap.String("session", sess.ID()))
	return loop(ctx, svc, sess.ID(), in, out)
}

func loop(ctx context.Context, svc runner, id string, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, helpText)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(out, helpText)
			continue
		}

		outcome, err := svc.Handle(ctx, id, line)
		if err != nil {
			renderError(out, err)
			continue
		}
		render(out, outcome)
	}
}
