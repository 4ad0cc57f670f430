package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, v, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate })
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "1.2.3", "abcdef1234567", "2025-06-01")

	info, err := GetInfo()
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abcdef1234567", info.GitCommit)
	assert.Equal(t, uint64(1), info.SemVer.Major())
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
	assert.Contains(t, info.Platform, "/")
}

func TestGetInfo_Invalid(t *testing.T) {
	withBuildInfo(t, "not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	assert.Error(t, err)
	assert.Equal(t, "tableshell vnot-a-version (invalid version)", GetFormattedVersion())
	assert.Contains(t, GetDetailedVersion(), "error:")
}

func TestGetFormattedVersion(t *testing.T) {
	tests := []struct {
		name     string
		commit   string
		date     string
		expected string
	}{
		{"development build", "unknown", "unknown", "tableshell v1.0.0"},
		{"release build", "abcdef1234567", "2025-06-01", "tableshell v1.0.0, commit abcdef1, built 2025-06-01"},
		{"short commit", "abc", "", "tableshell v1.0.0, commit abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, "1.0.0", tt.commit, tt.date)
			assert.Equal(t, tt.expected, GetFormattedVersion())
		})
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withBuildInfo(t, "2.0.0-beta.1", "abc", "2025-06-01")

	detailed := GetDetailedVersion()

	assert.Contains(t, detailed, "tableshell v2.0.0-beta.1")
	assert.Contains(t, detailed, "Prerelease: beta.1")
	assert.Contains(t, detailed, "Git Commit: abc")
	assert.Contains(t, detailed, "Go Version: go")
}
