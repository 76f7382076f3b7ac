package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Locale: "fr-FR"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://a/api"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.App.Locale)
	assert.Equal(t, "http://a/api", cfg.Adapter.HTTPAddress)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// configs win and zero fields keep the earlier value.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Locale: "en-US", LogFile: "/tmp/a.log"},
			Adapter: Adapter{RequestTimeout: time.Second},
		},
		&StructuredConfig{App: App{Locale: "fr-FR"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.App.Locale)
	assert.Equal(t, "/tmp/a.log", cfg.App.LogFile)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, 1, b.fileSlot)
	assert.Equal(t, DefaultAdapterAddress, b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, b.configs[0].Adapter.RequestTimeout)
	assert.Equal(t, DefaultLocale, b.configs[0].App.Locale)
	assert.NotEmpty(t, b.configs[0].Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_LOCALE", "fr-FR")
	t.Setenv("ADAPTER_ADDRESS", "http://env/api")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "fr-FR", b.configs[0].App.Locale)
	assert.Equal(t, "http://env/api", b.configs[0].Adapter.HTTPAddress)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	clearEnvVars(t)
	path := writeTempFile(t, "test.env", "ADAPTER_ADDRESS=http://dotenv/api\n")
	t.Cleanup(func() { _ = os.Unsetenv("ADAPTER_ADDRESS") })

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://dotenv/api", b.configs[0].Adapter.HTTPAddress)
}

func TestWithDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://process/api")
	path := writeTempFile(t, "test.env", "ADAPTER_ADDRESS=http://dotenv/api\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "http://process/api", b.configs[0].Adapter.HTTPAddress)
}

func TestWithDotEnv_MissingExplicitFile(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, b.err)
}

func TestWithDotEnv_MissingDefaultFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv("")
	assert.NoError(t, b.err)
}

// ── withOverrides ─────────────────────────────────────────────────────────────

func TestWithOverrides_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder().withOverrides(nil)
	assert.Empty(t, b.configs)
}

func TestWithOverrides_WinsOverEnv(t *testing.T) {
	t.Setenv("APP_LOCALE", "en-US")

	cfg, err := newConfigBuilder().
		withEnv().
		withOverrides(&StructuredConfig{App: App{Locale: "fr-FR"}}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.App.Locale)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_ReturnsBuilder verifies the fluent interface.
func TestWithFile_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFile())
}

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a ConfigFilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_InsertedAfterDefaults verifies that the file config is placed
// above the defaults and below the explicit sources.
func TestWithFile_InsertedAfterDefaults(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.Locale = "fr-FR"
	payload.Adapter.Address = "http://file/api"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder().
		withDefaults().
		withOverrides(&StructuredConfig{
			Adapter:        Adapter{HTTPAddress: "http://flag/api"},
			ConfigFilePath: path,
		}).
		withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "http://file/api", b.configs[1].Adapter.HTTPAddress)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.App.Locale)
	assert.Equal(t, "http://flag/api", cfg.Adapter.HTTPAddress)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithFile_SetsError_WhenMalformedJSON(t *testing.T) {
	path := writeTempFile(t, "bad.json", "{not valid json")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// ConfigFilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := StructuredFileConfig{}
	first.App.Locale = "en-GB"
	firstPath := writeTempJSONConfig(t, first)

	last := StructuredFileConfig{}
	last.App.Locale = "fr-FR"
	lastPath := writeTempJSONConfig(t, last)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: firstPath},
		&StructuredConfig{ConfigFilePath: lastPath},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "fr-FR", b.configs[0].App.Locale)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLocale, cfg.App.Locale)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	path := writeTempFile(t, "cfg.yaml", `
app:
  locale: fr-FR
  log_file: /tmp/file.log
adapter:
  address: http://file/api
  request_timeout: 5s
`)
	t.Setenv("ADAPTER_ADDRESS", "http://env/api")

	cfg, err := GetStructuredConfig([]string{"-c", path, "-locale", "en-GB"})

	require.NoError(t, err)
	assert.Equal(t, "en-GB", cfg.App.Locale)
	assert.Equal(t, "/tmp/file.log", cfg.App.LogFile)
	assert.Equal(t, "http://env/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}
