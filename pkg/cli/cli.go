package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/lineage/pkg/cli/config"
	"github.com/secmon-lab/lineage/pkg/utils/errutil"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out io.Writer
}

type Option func(*CLI)

// WithOutput sets writer of command results. Default is stdout.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{out: os.Stdout}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		sentryCfg config.Sentry
	)

	_, ctx := logging.CtxRequestID(context.Background())

	app := &cli.Command{
		Name:  "lineage",
		Usage: "Resolve changed files and last known-good pipelines for build and release automation",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("LINEAGE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("LINEAGE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("LINEAGE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		}, sentryCfg.Flags()),
		Commands: []*cli.Command{
			x.changesCommand(),
			x.mergeBaseCommand(),
			x.checkoutCommand(),
			x.previousSHACommand(),
			x.jobCheckCommand(),
			x.pipelineCommand(),
			x.commitDiffCommand(),
			x.queryCommand(),
			x.dumpCommand(),
			x.execCommand(),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			_, ctx = logging.WithRequest(ctx)

			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	disableSliceFlagSeparator(app)

	if err := app.Run(ctx, argv); err != nil {
		_, ctx := logging.WithRequest(ctx)
		errutil.HandleError(ctx, "fatal error", err)
		sentry.Flush(2 * time.Second)
		return err
	}

	return nil
}

// disableSliceFlagSeparator keeps commas in --arg and --variable values. Every
// command sets the separator on its own setup, so the root setting alone is not
// inherited.
func disableSliceFlagSeparator(cmd *cli.Command) {
	cmd.DisableSliceFlagSeparator = true
	for _, sub := range cmd.Commands {
		disableSliceFlagSeparator(sub)
	}
}
