package infra

import (
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/infra/git"
)

type Clients struct {
	git       interfaces.Git
	gitLab    interfaces.GitLab
	warehouse interfaces.Warehouse
}

type Option func(*Clients)

// New returns Clients. Git defaults to the git binary in PATH; GitLab and
// Warehouse stay nil unless configured.
func New(options ...Option) *Clients {
	client := &Clients{
		git: git.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) GitLab() interfaces.GitLab {
	return x.gitLab
}
func (x *Clients) Warehouse() interfaces.Warehouse {
	return x.warehouse
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithGitLab(client interfaces.GitLab) Option {
	return func(x *Clients) {
		x.gitLab = client
	}
}

func WithWarehouse(client interfaces.Warehouse) Option {
	return func(x *Clients) {
		x.warehouse = client
	}
}
