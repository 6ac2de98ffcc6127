package errutil

var SentryTags = sentryTags
