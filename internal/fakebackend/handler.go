package fakebackend

import (
	"strings"
	"time"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/utils"
)

const (
	defaultIssuer   = "sparknest-fakebackend"
	defaultSignKey  = "sparknest-dev-sign-key"
	defaultTokenTTL = 24 * time.Hour
)

// Options configure a Handler. Zero values select development defaults.
type Options struct {
	Issuer   string
	SignKey  string
	TokenTTL time.Duration
	// Prefix mounts the API below a path, e.g. "/api".
	Prefix string
	// Seed loads the bundled demo content and admin account.
	Seed bool
}

type Handler struct {
	store *memoryStore
	ids   *utils.UUIDGenerator

	issuer   string
	signKey  string
	tokenTTL time.Duration
	prefix   string

	logger *logger.Logger
}

func NewHandler(opts Options, logger *logger.Logger) (*Handler, error) {
	h := &Handler{
		store:    newMemoryStore(),
		ids:      utils.NewUUIDGenerator(),
		issuer:   opts.Issuer,
		signKey:  opts.SignKey,
		tokenTTL: opts.TokenTTL,
		prefix:   strings.TrimRight(opts.Prefix, "/"),
		logger:   logger,
	}
	if h.issuer == "" {
		h.issuer = defaultIssuer
	}
	if h.signKey == "" {
		h.signKey = defaultSignKey
	}
	if h.tokenTTL <= 0 {
		h.tokenTTL = defaultTokenTTL
	}

	if opts.Seed {
		if err := h.seed(); err != nil {
			return nil, err
		}
	}

	logger.Info().Bool("seeded", opts.Seed).Msg("fake backend handler created")
	return h, nil
}
