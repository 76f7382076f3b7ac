package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/crypto"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// SecureStore holds the persisted session.
	SecureStore SecureStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Derives the sealing key from cfg.Secret, or from [crypto.DeviceSecret]
//     when no secret is configured.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, keychain crypto.KeyChainService, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	secret := cfg.Secret
	if secret == "" {
		secret = crypto.DeviceSecret()
	}

	secureStore, err := NewSecureStore(ctx, db, keychain, secret, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("secure store init failed: %w", err)
	}

	return &ClientStorages{
		SecureStore: secureStore,
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
