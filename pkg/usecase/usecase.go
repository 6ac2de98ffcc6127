package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

func (x *UseCase) gitLab() (interfaces.GitLab, error) {
	if x.clients.GitLab() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab is not configured")
	}
	return x.clients.GitLab(), nil
}

func (x *UseCase) warehouse() (interfaces.Warehouse, error) {
	if x.clients.Warehouse() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "warehouse is not configured")
	}
	return x.clients.Warehouse(), nil
}
