package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testSession struct {
	CSRF string `json:"csrf"`
	Mid  string `json:"mid"`
}

type testConfig struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Timeout  int         `json:"timeout_seconds"`
	Session  testSession `json:"session"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, filepath.Join("a", "config.local.json5"), LocalPath(filepath.Join("a", "config.json5")))
	require.Equal(t, filepath.Join("a", "config.local"), LocalPath(filepath.Join("a", "config")))
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		// comments are allowed
		username: "alice",
		password: "hunter2",
		timeout_seconds: 30,
	}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{
		password: "override",
		session: { csrf: "c1", mid: "m1" },
	}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "alice", cfg.Username)
	require.Equal(t, "override", cfg.Password)
	require.Equal(t, 30, cfg.Timeout)
	require.Equal(t, testSession{CSRF: "c1", Mid: "m1"}, cfg.Session)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{username: "bob"}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "bob", cfg.Username)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{username: `)

	_, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}
