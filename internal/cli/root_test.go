package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep a config file in the real home directory out of the tests
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand(VersionInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-10-01"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "yt-thumbnails 1.2.3\n", out)

	out, err = executeCommand(t, "version", "--detailed")
	require.NoError(t, err)
	assert.Contains(t, out, "Commit:     abc1234")
	assert.Contains(t, out, "Build Date: 2026-10-01")
}

func TestListCommand_DefaultCatalog(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[1], filepath.Join("images", "project1.jpg"))
	assert.Contains(t, lines[1], "https://www.instagram.com/reel/DHBWYqbMLMK/")
	assert.Contains(t, lines[11], filepath.Join("images", "project11.jpg"))
}

func TestListCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumbs.yaml")
	content := "output-dir: /srv/site/pics\nitems:\n  - url: https://example.com/a\n    filename: out1.jpg\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := executeCommand(t, "list", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("pics", "out1.jpg"))
	assert.Contains(t, out, "https://example.com/a")
	assert.NotContains(t, out, "project1.jpg")
}

func TestConfigFileMissing(t *testing.T) {
	_, err := executeCommand(t, "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestRun_MissingToolAborts(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "images")

	out, err := executeCommand(t,
		"--tool", "definitely-not-a-real-yt-dlp",
		"--skip-install",
		"--output-dir", outputDir,
	)

	require.NoError(t, err, "an aborted run still exits cleanly")
	assert.Contains(t, out, "definitely-not-a-real-yt-dlp not found (install skipped)")
	assert.NotContains(t, out, "Failed to install")
	assert.Contains(t, out, "Please install manually: pip3 install yt-dlp")
	assert.NotContains(t, out, "Downloaded")

	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_InvalidTimeout(t *testing.T) {
	_, err := executeCommand(t, "--timeout=-5s", "--skip-install")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRun_RejectsArguments(t *testing.T) {
	_, err := executeCommand(t, "https://example.com/a")
	require.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("YTTHUMBS_OUTPUT_DIR", "/var/www/thumbs")

	out, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("thumbs", "project1.jpg"))
}
