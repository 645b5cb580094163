package services

import (
	portsrepo "github.com/fmpay/fmpay_backend/internal/core/ports/repositories"
	portssvc "github.com/fmpay/fmpay_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.LedgerRepo),
	}
}
