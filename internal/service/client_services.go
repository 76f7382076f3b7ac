package service

import (
	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/store"
)

// ClientServices groups everything the TUI and the CLI talk to.
type ClientServices struct {
	Session   SessionService
	Resources ResourceService
	Dashboard DashboardService
	Icons     *icons.Catalog
}

func NewClientServices(secureStore store.SecureStore, serverAdapter adapter.ServerAdapter, catalog *icons.Catalog, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(secureStore, serverAdapter, logger)
	resourceSvc := NewClientResourceService(serverAdapter, logger)

	return &ClientServices{
		Session:   sessionSvc,
		Resources: resourceSvc,
		Dashboard: NewClientDashboardService(resourceSvc, sessionSvc, logger),
		Icons:     catalog.WithLogger(logger),
	}
}
