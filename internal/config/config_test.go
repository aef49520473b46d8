package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lostfound-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsMatchBuiltins(t *testing.T) {
	for _, k := range []string{
		"LOSTFOUND_LOAD_DELAY", "LOSTFOUND_SUBMIT_DELAY", "LOSTFOUND_TUI_GLYPHS", "LOSTFOUND_TUI_THEME",
		"LOSTFOUND_LOST_IMAGE", "LOSTFOUND_FOUND_IMAGE", "LOSTFOUND_DRAFT_IMAGE",
		"LOSTFOUND_LOST_TYPE", "LOSTFOUND_FOUND_TYPE", "LOSTFOUND_COMMENT_MAX",
		"LOSTFOUND_LOG_FILE", "LOSTFOUND_LOG_LEVEL", "LOSTFOUND_SENTRY_DSN",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOSTFOUND_LOAD_DELAY", "10ms")
	t.Setenv("LOSTFOUND_FOUND_TYPE", "phone")
	t.Setenv("LOSTFOUND_COMMENT_MAX", "50")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.UI.LoadDelay)
	assert.Equal(t, model.ItemTypePhone, cfg.Catalog.DefaultType(model.CategoryFound))
	assert.Equal(t, 50, cfg.Catalog.CommentMax)
}

func TestLoad_RejectsUnknownItemType(t *testing.T) {
	t.Setenv("LOSTFOUND_LOST_TYPE", "umbrella")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid lost item type")
}

func TestLoad_FromYAMLFile(t *testing.T) {
	t.Setenv("LOSTFOUND_SUBMIT_DELAY", "")
	require.NoError(t, os.Unsetenv("LOSTFOUND_SUBMIT_DELAY"))

	path := filepath.Join(t.TempDir(), "lostfound.yaml")
	body := "ui:\n  submit_delay: 250ms\ncatalog:\n  lost_type: key\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.SubmitDelay)
	assert.Equal(t, model.ItemTypeKey, cfg.Catalog.DefaultType(model.CategoryLost))
}

func TestCatalog_PerCategoryDefaults(t *testing.T) {
	t.Parallel()

	c := Defaults().Catalog
	assert.Equal(t, model.ItemTypeWallet, c.DefaultType(model.CategoryLost))
	assert.Equal(t, model.ItemTypeBag, c.DefaultType(model.CategoryFound))
	assert.NotEqual(t, c.PlaceholderImage(model.CategoryLost), c.PlaceholderImage(model.CategoryFound))
}
