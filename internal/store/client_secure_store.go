package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sparknest-admin/internal/crypto"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
)

// sqliteSecureStore is the SQLite-backed implementation of [SecureStore].
// Values are sealed with a key derived from the storage secret and a salt
// kept in the meta table.
type sqliteSecureStore struct {
	*DB
	keychain crypto.KeyChainService
	key      []byte
	now      func() time.Time
	logger   *logger.Logger
}

// NewSecureStore prepares the sealing key (creating the salt on first use)
// and returns a [SecureStore] on top of db. The schema must be migrated.
func NewSecureStore(ctx context.Context, db *DB, keychain crypto.KeyChainService, secret string, log *logger.Logger) (SecureStore, error) {
	salt, err := loadOrCreateSalt(ctx, db, keychain)
	if err != nil {
		log.Err(err).Str("func", "NewSecureStore").Msg("failed to prepare store salt")
		return nil, err
	}

	return &sqliteSecureStore{
		DB:       db,
		keychain: keychain,
		key:      keychain.DeriveKey(secret, salt),
		now:      time.Now,
		logger:   log,
	}, nil
}

func loadOrCreateSalt(ctx context.Context, db *DB, keychain crypto.KeyChainService) ([]byte, error) {
	salt, err := selectMeta(ctx, db, metaSalt)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}

	salt, err = keychain.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	query, args, err := buildInsertMetaQuery(metaSalt, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// another process may have won the insert
	return selectMeta(ctx, db, metaSalt)
}

func selectMeta(ctx context.Context, db *DB, name string) ([]byte, error) {
	query, args, err := buildSelectMetaQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteSecureStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteSecureStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	value, err := s.keychain.Open(sealed, s.key)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteSecureStore.Get").
			Str("key", key).
			Msg("failed to open stored value")
		return nil, fmt.Errorf("%w (key=%s): %w", ErrOpeningValue, key, err)
	}

	return value, nil
}

func (s *sqliteSecureStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *sqliteSecureStore) Delete(ctx context.Context, key string) error {
	return s.DeleteMany(ctx, key)
}

func (s *sqliteSecureStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return nil
	}

	// seal everything up front so a crypto failure never leaves a partial write
	sealed := make(map[string][]byte, len(entries))
	for key, value := range entries {
		blob, err := s.keychain.Seal(value, s.key)
		if err != nil {
			return fmt.Errorf("%w (key=%s): %w", ErrSealingValue, key, err)
		}
		sealed[key] = blob
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteSecureStore.SetMany").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := s.now()
	for key, blob := range sealed {
		query, args, err := buildUpsertValueQuery(key, blob, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "sqliteSecureStore.SetMany").
				Str("key", key).
				Msg("failed to upsert value")
			return fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteSecureStore.SetMany").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteSecureStore) DeleteMany(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteValuesQuery(keys)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// a single DELETE ... IN is atomic on its own
	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteSecureStore.DeleteMany").
			Strs("keys", keys).
			Msg("failed to delete values")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
