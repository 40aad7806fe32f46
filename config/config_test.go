package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawanYadav007s/Design-Records-APP/models"
)

func TestLoadSettingsCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")

	cfg, err := LoadSettings(settingsPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "ExcelBackup"), cfg.ExcelSavePath)
	assert.Equal(t, filepath.Join(dir, "design.db"), cfg.DBPath)

	// The settings file was persisted and the backup folder created
	assert.FileExists(t, settingsPath)
	info, err := os.Stat(cfg.ExcelSavePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadSettingsIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")

	first, err := LoadSettings(settingsPath)
	require.NoError(t, err)

	second, err := LoadSettings(settingsPath)
	require.NoError(t, err)

	assert.Equal(t, first.ExcelSavePath, second.ExcelSavePath)
	assert.Equal(t, first.DBPath, second.DBPath)
}

func TestLoadSettingsRespectsExistingFile(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	customBackup := filepath.Join(dir, "custom", "backups")

	content := `{"excel_save_path": "` + filepath.ToSlash(customBackup) + `", "db_path": "` + filepath.ToSlash(filepath.Join(dir, "records.db")) + `"}`
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0o644))

	cfg, err := LoadSettings(settingsPath)
	require.NoError(t, err)

	assert.Equal(t, customBackup, cfg.ExcelSavePath)

	// An existing valid file must not be rewritten with defaults
	raw, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "custom")

	// Intermediate directories of the backup folder were created
	info, err := os.Stat(cfg.ExcelSavePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadSettingsUnparsableFile(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(settingsPath, []byte("{not valid json"), 0o644))

	_, err := LoadSettings(settingsPath)
	assert.Error(t, err)

	var configErr *models.ConfigurationError
	assert.True(t, errors.As(err, &configErr), "error should be a ConfigurationError")
}

func TestLoadSettingsBackupDirNotCreatable(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")

	// Point the backup folder underneath a regular file so MkdirAll fails
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	content := `{"excel_save_path": "` + filepath.ToSlash(filepath.Join(blocker, "backups")) + `"}`
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0o644))

	_, err := LoadSettings(settingsPath)
	assert.Error(t, err)

	var configErr *models.ConfigurationError
	assert.True(t, errors.As(err, &configErr), "error should be a ConfigurationError")
}

func TestGetAndSetConfig(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	cfg := &Config{ExcelSavePath: "/tmp/backups", DBPath: "/tmp/design.db"}
	SetConfig(cfg)
	assert.Equal(t, cfg, GetConfig())
}
