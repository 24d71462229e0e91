package commands

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/files"
)

// chdirTemp moves the test into a fresh directory that also serves as HOME,
// so no user configuration leaks in
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldDir) })
	return dir
}

// setupProject is chdirTemp plus an initialized project
func setupProject(t *testing.T) string {
	t.Helper()
	dir := chdirTemp(t)
	require.NoError(t, files.InitProjectStructure())
	return dir
}

type runOptions struct {
	input string
	ctx   context.Context
}

// execute runs sub under a root carrying the global flags and returns
// everything written to stdout and stderr
func execute(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	return executeWith(t, runOptions{}, sub, args...)
}

func executeWith(t *testing.T, opts runOptions, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var skip bool
	root := &cobra.Command{
		Use:           "sidebar-builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetGlobalFlags(false, false, skip)
		},
	}
	root.PersistentFlags().String("config", "", "")
	root.PersistentFlags().StringP("output", "o", "text", "")
	root.PersistentFlags().BoolVarP(&skip, "yes", "y", false, "")
	root.AddCommand(sub)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	cli.SetStreams(strings.NewReader(opts.input), buf, buf)
	t.Cleanup(func() {
		cli.SetStreams(os.Stdin, os.Stdout, os.Stderr)
		cli.SetGlobalFlags(false, false, false)
	})

	root.SetArgs(append([]string{sub.Name()}, args...))

	ctx := opts.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	err := root.ExecuteContext(ctx)
	return buf.String(), err
}
