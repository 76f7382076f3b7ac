// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"golang.org/x/text/language"
)

// validate checks the merged [StructuredConfig]. Semantic checks live in
// [ClientConfig.validate]; nothing here yet.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := language.Parse(cfg.App.Locale); err != nil {
		return ErrInvalidAppConfigs
	}

	return nil
}
