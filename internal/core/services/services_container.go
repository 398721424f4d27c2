package services

import (
	"net/http"
	"time"

	portsrepo "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/repositories"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/pennypilot-app/pennypilot_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction:   NewTransactionService(repos.TransactionRepo),
		Rates:         NewRateService(cfg.RatesAPIURL, &http.Client{Timeout: 10 * time.Second}),
		TokenVerifier: NewGoogleTokenVerifier(cfg.GoogleClientID),
	}
}
