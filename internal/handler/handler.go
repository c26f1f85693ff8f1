package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, paginationSvc service.PaginationService) {
	h := NewHealthHandler()

	// Health probes
	r.GET("/live", h.Liveness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
		}
		NewPaginationHandler(paginationSvc).Register(api)
	}
}
