// Package handlers exposes the core services over HTTP. Every endpoint
// answers the uniform {code, message, data} envelope; paginated data is
// {list, total, pageNum, pageSize}.
package handlers

import (
	"contractdesk/internal/service"
	"contractdesk/internal/session"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	contracts  *service.ContractService
	identity   *service.IdentityService
	statistics *service.StatisticsService
	system     *service.SystemService
	sessions   *session.Manager
}

func New(
	contracts *service.ContractService,
	identity *service.IdentityService,
	statistics *service.StatisticsService,
	system *service.SystemService,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		contracts:  contracts,
		identity:   identity,
		statistics: statistics,
		system:     system,
		sessions:   sessions,
	}
}
