package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra/gitlab"
	"github.com/urfave/cli/v3"
)

type GitLab struct {
	url       string
	token     string
	verifyTLS bool
}

func (x *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-url",
			Usage:       "GitLab base URL",
			Category:    "GitLab",
			Value:       "https://gitlab.com",
			Destination: &x.url,
			Sources:     cli.EnvVars("LINEAGE_GITLAB_URL"),
		},
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab personal or project access token",
			Category:    "GitLab",
			Destination: &x.token,
			Sources:     cli.EnvVars("LINEAGE_GITLAB_TOKEN"),
		},
		&cli.BoolFlag{
			Name:        "gitlab-verify-tls",
			Usage:       "Verify TLS certificate of GitLab (disabled by default for self-signed instances)",
			Category:    "GitLab",
			Destination: &x.verifyTLS,
			Sources:     cli.EnvVars("LINEAGE_GITLAB_VERIFY_TLS"),
		},
	}
}

func (x *GitLab) New() (*gitlab.Client, error) {
	if x.url == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab URL is required")
	}
	if x.token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab token is required")
	}

	return gitlab.New(types.GitLabURL(x.url), types.GitLabToken(x.token), gitlab.WithVerifyTLS(x.verifyTLS))
}

func (x *GitLab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.Any("Token", types.GitLabToken(x.token)),
		slog.Bool("VerifyTLS", x.verifyTLS),
	)
}
