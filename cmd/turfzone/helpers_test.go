package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"turfzone/internal/db"
)

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (out string, err error) {
	resetFlags(root)
	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()

	b := new(bytes.Buffer)
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				out, err = b.String(), fmt.Errorf("%s", s)
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()

	root.SetArgs(args)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err = root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// tempDSN returns a path for a fresh SQLite store.
func tempDSN(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "turfzone.db")
}

// seededDSN returns a SQLite store holding the demo turfs.
func seededDSN(t *testing.T) string {
	t.Helper()
	dsn := tempDSN(t)
	store, err := db.NewSQLiteStore(dsn)
	require.NoError(t, err)
	defer store.Close()
	_, err = store.Seed(context.Background(), db.DemoTurfs())
	require.NoError(t, err)
	return dsn
}
