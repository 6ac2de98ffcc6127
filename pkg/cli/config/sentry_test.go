package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/cli/config"
	"github.com/secmon-lab/lineage/pkg/utils/testutil"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.V(t, flagNames).Equal(map[string]bool{
		"sentry-dsn":     true,
		"sentry-env":     true,
		"sentry-release": true,
	})
}

func TestSentry(t *testing.T) {
	testutil.UnsetEnv(t, "LINEAGE_SENTRY_DSN", "LINEAGE_SENTRY_ENV", "LINEAGE_SENTRY_RELEASE")

	t.Run("client options", func(t *testing.T) {
		var cfg config.Sentry
		parse(t, cfg.Flags(), "--sentry-dsn", "https://key@sentry.example.com/1", "--sentry-env", "ci", "--sentry-release", "c0ffee")

		opts := config.SentryClientOptions(&cfg)
		gt.V(t, opts.Dsn).Equal("https://key@sentry.example.com/1")
		gt.V(t, opts.Environment).Equal("ci")
		gt.V(t, opts.Release).Equal("c0ffee")
		gt.V(t, opts.Tags["service"]).Equal("lineage")
	})

	t.Run("not configured without DSN", func(t *testing.T) {
		var cfg config.Sentry
		parse(t, cfg.Flags())
		gt.NoError(t, cfg.Configure(context.Background()))
	})
}
