package config

import "github.com/getsentry/sentry-go"

func SentryClientOptions(x *Sentry) sentry.ClientOptions {
	return x.clientOptions()
}
