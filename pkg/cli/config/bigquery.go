package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra/warehouse"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

const bigQueryScope = "https://www.googleapis.com/auth/bigquery"

type BigQuery struct {
	projectID      string
	impersonateSA  string
	credentialFile string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "Google Cloud project ID running BigQuery jobs",
			Category:    "BigQuery",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("LINEAGE_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateSA,
			Sources:     cli.EnvVars("LINEAGE_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
		&cli.StringFlag{
			Name:        "bigquery-credential-file",
			Usage:       "Path to service account credential JSON (default: application default credentials)",
			Category:    "BigQuery",
			Destination: &x.credentialFile,
			Sources:     cli.EnvVars("LINEAGE_BIGQUERY_CREDENTIAL_FILE"),
		},
	}
}

func (x *BigQuery) clientOptions(ctx context.Context) ([]option.ClientOption, error) {
	var options []option.ClientOption
	if x.credentialFile != "" {
		options = append(options, option.WithCredentialsFile(x.credentialFile))
	}

	if x.impersonateSA != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateSA,
			Scopes:          []string{bigQueryScope},
		}, options...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create impersonated token source", goerr.V("service_account", x.impersonateSA))
		}
		options = []option.ClientOption{option.WithTokenSource(ts)}
	}

	return options, nil
}

func (x *BigQuery) New(ctx context.Context) (*warehouse.BigQuery, error) {
	if x.projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery project ID is required")
	}

	options, err := x.clientOptions(ctx)
	if err != nil {
		return nil, err
	}
	return warehouse.NewBigQuery(ctx, types.GoogleProjectID(x.projectID), options...)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ProjectID", x.projectID),
		slog.String("ImpersonateServiceAccount", x.impersonateSA),
		slog.String("CredentialFile", x.credentialFile),
	)
}
