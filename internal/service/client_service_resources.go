package service

import (
	"context"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/models"
)

type clientResourceService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientResourceService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ResourceService {
	return &clientResourceService{adapter: serverAdapter, logger: logger}
}

func (r *clientResourceService) List(ctx context.Context, kind models.ResourceKind) ([]models.Entity, error) {
	items, err := r.adapter.List(ctx, kind)
	if err != nil {
		r.logger.Warn().Err(err).Str("kind", string(kind)).Msg("list failed")
		return nil, err
	}

	r.logger.Debug().Str("kind", string(kind)).Int("count", len(items)).Msg("listed")
	return items, nil
}

func (r *clientResourceService) Create(ctx context.Context, kind models.ResourceKind, data models.Entity) (models.Entity, error) {
	created, err := r.adapter.Create(ctx, kind, data)
	if err != nil {
		r.logger.Warn().Err(err).Str("kind", string(kind)).Msg("create failed")
		return nil, err
	}

	r.logger.Info().Str("kind", string(kind)).Str("id", created.ID().String()).Msg("created")
	return created, nil
}

func (r *clientResourceService) Update(ctx context.Context, kind models.ResourceKind, id models.ID, data models.Entity) (models.Entity, error) {
	updated, err := r.adapter.Update(ctx, kind, id, data)
	if err != nil {
		r.logger.Warn().Err(err).Str("kind", string(kind)).Str("id", id.String()).Msg("update failed")
		return nil, err
	}

	r.logger.Info().Str("kind", string(kind)).Str("id", id.String()).Msg("updated")
	return updated, nil
}

func (r *clientResourceService) Delete(ctx context.Context, kind models.ResourceKind, id models.ID) error {
	if err := r.adapter.Delete(ctx, kind, id); err != nil {
		r.logger.Warn().Err(err).Str("kind", string(kind)).Str("id", id.String()).Msg("delete failed")
		return err
	}

	r.logger.Info().Str("kind", string(kind)).Str("id", id.String()).Msg("deleted")
	return nil
}

func (r *clientResourceService) MarkRead(ctx context.Context, id models.ID) error {
	if err := r.adapter.MarkRead(ctx, id); err != nil {
		r.logger.Warn().Err(err).Str("id", id.String()).Msg("mark read failed")
		return err
	}

	r.logger.Info().Str("id", id.String()).Msg("message marked read")
	return nil
}
