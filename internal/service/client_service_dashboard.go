package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/models"
)

type clientDashboardService struct {
	resources ResourceService
	session   SessionService

	logger *logger.Logger
}

func NewClientDashboardService(resources ResourceService, session SessionService, logger *logger.Logger) DashboardService {
	return &clientDashboardService{resources: resources, session: session, logger: logger}
}

// Load issues one List per kind in parallel. The counts are independent
// reads; no consistency across kinds is implied.
func (d *clientDashboardService) Load(ctx context.Context) models.DashboardStats {
	kinds := models.AllResourceKinds()
	user, _ := d.session.CurrentUser()

	stats := models.DashboardStats{
		User:   user,
		Counts: make(map[models.ResourceKind]int, len(kinds)),
		Errors: make(map[models.ResourceKind]error),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, kind := range kinds {
		wg.Add(1)
		go func() {
			defer wg.Done()

			items, err := d.resources.List(ctx, kind)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Errors[kind] = err
				return
			}
			stats.Counts[kind] = len(items)
			if kind == models.Messages {
				stats.UnreadMessages = models.CountUnread(items)
			}
		}()
	}
	wg.Wait()

	d.logger.Debug().Int("failed", len(stats.Errors)).Msg("dashboard loaded")
	return stats
}
