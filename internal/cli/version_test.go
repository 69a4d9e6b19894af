package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(origVersion, origCommit, origDate) })
	SetVersionInfo(v, c, d)
}

func TestVersionOutput(t *testing.T) {
	withVersion(t, "1.2.3", "abc123", "2024-06-01")

	out, err := runCLI(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "zietsense v1.2.3")
	assert.Contains(t, out, "commit: abc123")
	assert.Contains(t, out, "built: 2024-06-01")
	assert.Contains(t, out, "go: "+runtime.Version())
	assert.Contains(t, out, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionShort(t *testing.T) {
	withVersion(t, "1.2.3", "abc123", "2024-06-01")

	out, err := runCLI(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"1.0.0", "v1.0.0"},
		{"v2.1.0", "v2.1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}
