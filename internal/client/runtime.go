package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/crypto"
	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/internal/store"
	"github.com/MKhiriev/sparknest-admin/internal/validators"
	"github.com/MKhiriev/sparknest-admin/models"
)

// Runtime is the wired client: everything below the presentation layer.
type Runtime struct {
	Config     *config.ClientConfig
	Services   *service.ClientServices
	Validator  validators.Validator
	Translator *i18n.Translator

	logger *logger.Logger
	closer io.Closer
}

// NewRuntime opens the session database described by cfg and wires the
// services on top of it. Close must be called to release the database.
func NewRuntime(ctx context.Context, cfg *config.ClientConfig, keychain crypto.KeyChainService, log *logger.Logger) (*Runtime, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, keychain, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	rt, err := NewRuntimeWithStore(cfg, storages.SecureStore, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	rt.closer = storages
	return rt, nil
}

// NewRuntimeWithStore wires the services on an already opened store.
func NewRuntimeWithStore(cfg *config.ClientConfig, secureStore store.SecureStore, log *logger.Logger) (*Runtime, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	catalog := icons.Default()
	return &Runtime{
		Config:     cfg,
		Services:   service.NewClientServices(secureStore, serverAdapter, catalog, log),
		Validator:  validators.NewFormValidator(catalog),
		Translator: i18n.Default().Translator(cfg.App.Locale),
		logger:     log,
	}, nil
}

// Restore loads the persisted session. A store failure is logged and the
// client continues anonymous: the user can always log in again.
func (r *Runtime) Restore(ctx context.Context) models.Session {
	sess, err := r.Services.Session.Restore(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("session restore failed, continuing anonymous")
	}
	return sess
}

func (r *Runtime) Logger() *logger.Logger { return r.logger }

// Close releases the session database, if the runtime opened one.
func (r *Runtime) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	if err != nil {
		return fmt.Errorf("close client storages: %w", err)
	}
	return nil
}
