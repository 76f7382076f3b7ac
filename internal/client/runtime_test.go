package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/crypto"
	"github.com/MKhiriev/sparknest-admin/internal/fakebackend"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/store"
	"github.com/MKhiriev/sparknest-admin/models"
)

func newTestConfig(t *testing.T) *config.ClientConfig {
	t.Helper()

	h, err := fakebackend.NewHandler(fakebackend.Options{Seed: true}, logger.Nop())
	require.NoError(t, err)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return &config.ClientConfig{
		App: config.ClientApp{Locale: "fr-FR"},
		Adapter: config.ClientAdapter{
			HTTPAddress:    srv.URL,
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.ClientStorage{
			DB:     config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.db")},
			Secret: "test-secret",
		},
	}
}

func TestRuntime_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	keychain := crypto.NewLightKeyChainService()

	rt, err := NewRuntime(ctx, cfg, keychain, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", rt.Translator.Locale())
	assert.Equal(t, models.Anonymous, rt.Restore(ctx).State)

	_, err = rt.Services.Session.Login(ctx, models.Credentials{Email: "admin@sparknest.dev", Password: "sparknest"})
	require.NoError(t, err)
	require.NoError(t, rt.Close())
	require.NoError(t, rt.Close())

	// второй запуск поднимает сессию из той же базы
	rt, err = NewRuntime(ctx, cfg, keychain, logger.Nop())
	require.NoError(t, err)
	defer rt.Close()

	sess := rt.Restore(ctx)
	assert.Equal(t, models.Authenticated, sess.State)
	assert.Equal(t, "admin@sparknest.dev", sess.User.Email)

	items, err := rt.Services.Resources.List(ctx, models.Articles)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestRuntime_WrongSecretStartsAnonymous(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	keychain := crypto.NewLightKeyChainService()

	rt, err := NewRuntime(ctx, cfg, keychain, logger.Nop())
	require.NoError(t, err)
	_, err = rt.Services.Session.Login(ctx, models.Credentials{Email: "admin@sparknest.dev", Password: "sparknest"})
	require.NoError(t, err)
	require.NoError(t, rt.Close())

	cfg.Storage.Secret = "another-secret"
	rt, err = NewRuntime(ctx, cfg, keychain, logger.Nop())
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, models.Anonymous, rt.Restore(ctx).State)
}

func TestRuntime_StoreFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	// токен без данных пользователя: очистка падает, но клиент стартует
	failing := store.NewFailingMemorySecureStore(map[string][]byte{models.SessionTokenKey: []byte("tok")}, assert.AnError)

	rt, err := NewRuntimeWithStore(newTestConfig(t), failing, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Anonymous, rt.Restore(ctx).State)
	assert.NoError(t, rt.Close())
}

func TestNewRuntime_BadAddress(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Adapter.HTTPAddress = "://bad"

	_, err := NewRuntime(context.Background(), cfg, crypto.NewLightKeyChainService(), logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_WiresTUI(t *testing.T) {
	rt, err := NewRuntimeWithStore(newTestConfig(t), store.NewMemorySecureStore(), logger.Nop())
	require.NoError(t, err)

	app := newApp(rt, models.NewAppBuildInfo("1.0.0", "", ""))

	require.NotNil(t, app.ui)
	assert.Equal(t, "menu", app.ui.Model(context.Background()).CurrentPage())
}
