package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

// tagKeys are goerr values indexed as Sentry tags so that failures can be
// grouped by project, pipeline, repository or warehouse driver.
var tagKeys = []string{"project_id", "pipeline_id", "ref", "repo", "driver"}

func sentryTags(values map[string]any) map[string]string {
	tags := map[string]string{}
	for _, key := range tagKeys {
		if v, ok := values[key]; ok {
			tags[key] = fmt.Sprint(v)
		}
	}
	return tags
}

// HandleError reports err to Sentry (when configured) and logs it with the logger in ctx.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	reqID, _ := logging.CtxRequestID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", reqID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			values := goErr.Values()
			scope.SetTags(sentryTags(values))
			for k, v := range values {
				scope.SetExtra(k, v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
