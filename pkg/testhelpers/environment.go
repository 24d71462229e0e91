package testhelpers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/files"
)

// TestEnvironment runs a test inside a temporary working directory
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	OriginalWd string
}

// NewTestEnvironment creates a temp dir and changes into it. The previous
// working directory is restored when the test finishes.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	originalWd, err := os.Getwd()
	require.NoError(t, err)

	env := &TestEnvironment{
		t:          t,
		TempDir:    t.TempDir(),
		OriginalWd: originalWd,
	}

	require.NoError(t, os.Chdir(env.TempDir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})

	return env
}

// InitProject creates the project directory with default state files
func (e *TestEnvironment) InitProject() *TestEnvironment {
	e.t.Helper()
	require.NoError(e.t, files.InitProjectStructure())
	return e
}
