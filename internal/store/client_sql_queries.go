// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	secureStoreTable     = "secure_store"
	secureStoreMetaTable = "secure_store_meta"

	metaSalt = "salt"
)

// SQLite takes ? placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectValueQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(secureStoreTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertValueQuery(key string, value []byte, now time.Time) (string, []any, error) {
	return sqlite.
		Insert(secureStoreTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValuesQuery(keys []string) (string, []any, error) {
	return sqlite.
		Delete(secureStoreTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildSelectMetaQuery(name string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(secureStoreMetaTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildInsertMetaQuery(name string, value []byte) (string, []any, error) {
	return sqlite.
		Insert(secureStoreMetaTable).
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO NOTHING").
		ToSql()
}
