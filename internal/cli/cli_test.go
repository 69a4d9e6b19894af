package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMachineTable = `
machines:
  - id: loom
    name: Air Jet Loom
    icon: settings
    metrics:
      temperature: {current: 40, optimal: {min: 30, max: 50}}
      vibration: {current: 2.4, optimal: {max: 2.0}}
      power: {current: 120, optimal: {max: 150}}
      operational_hours: {current: 10, total: 100}
    history:
      temperature: [38, 39, 40, 41, 40]
      vibration: [2.0, 2.1, 2.2, 2.3, 2.4]
      power: [110, 115, 120, 125, 120]
      operational_hours: [2, 4, 6, 8, 10]
    maintenance:
      last_maintenance: "2024-05-01"
      next_maintenance: "2024-11-01"
      hours_until_maintenance: 90
`

// runCLI executes the root command with args in an empty working directory
// and home, so no real config is picked up.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--no-color"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	cfgFile = ""
	machineFlag = ""
	registryFlag = ""
	noColor = false
	machinesJSON = false
	showWidth = 0
	versionShort = false
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
