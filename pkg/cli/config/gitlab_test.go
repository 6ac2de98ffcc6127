package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/cli/config"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/testutil"
	"github.com/urfave/cli/v3"
)

// parse applies args to flags of a throwaway command
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitLab(t *testing.T) {
	testutil.UnsetEnv(t, "LINEAGE_GITLAB_URL", "LINEAGE_GITLAB_TOKEN", "LINEAGE_GITLAB_VERIFY_TLS")

	t.Run("token is required", func(t *testing.T) {
		var cfg config.GitLab
		parse(t, cfg.Flags())

		_, err := cfg.New()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("create client", func(t *testing.T) {
		var cfg config.GitLab
		parse(t, cfg.Flags(), "--gitlab-url", "https://gitlab.example.com", "--gitlab-token", "secret-token")

		client, err := cfg.New()
		gt.NoError(t, err)
		gt.V(t, client).NotEqual(nil)
	})

	t.Run("URL defaults to gitlab.com", func(t *testing.T) {
		var cfg config.GitLab
		parse(t, cfg.Flags(), "--gitlab-token", "secret-token")

		url := cfg.LogValue().Group()[0]
		gt.V(t, url.Key).Equal("URL")
		gt.V(t, url.Value.String()).Equal("https://gitlab.com")
	})

	t.Run("URL from environment", func(t *testing.T) {
		t.Setenv("LINEAGE_GITLAB_URL", "https://gitlab.internal.example.com")
		var cfg config.GitLab
		parse(t, cfg.Flags(), "--gitlab-token", "secret-token")

		url := cfg.LogValue().Group()[0]
		gt.V(t, url.Value.String()).Equal("https://gitlab.internal.example.com")
	})

	t.Run("log value hides token", func(t *testing.T) {
		var cfg config.GitLab
		parse(t, cfg.Flags(), "--gitlab-token", "secret-token")

		attrs := map[string]string{}
		for _, attr := range cfg.LogValue().Group() {
			attrs[attr.Key] = attr.Value.Resolve().String()
		}
		gt.V(t, attrs["URL"]).Equal("https://gitlab.com")
		gt.V(t, attrs["VerifyTLS"]).Equal("false")
		gt.V(t, attrs["Token"]).Equal("***********")
	})
}
