package services

import (
	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, sources portsrepo.SourceProvider, policy finance.Policy) *portssvc.ServiceContainer {
	fetcher := NewFetchCoordinator(sources,
		WithFetchTimeout(cfg.FetchTimeout),
		WithFetchLimits(policy.FetchLimits),
	)

	return &portssvc.ServiceContainer{
		Dashboard: NewDashboardService(fetcher,
			WithPolicy(policy),
			WithCache(cfg.CacheSize, cfg.CacheTTL),
			WithReportingLocation(cfg.ReportingLocation),
		),
	}
}
