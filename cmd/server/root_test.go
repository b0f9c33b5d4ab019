package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "watch"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/app.db")
	t.Setenv("LOG_LEVEL", "ERROR")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"migrate"})

	require.NoError(t, rootCmd.Execute(), buf.String())
	assert.Equal(t, "sqlite", cfg.StoreDriver)
}

func TestWatch_RequiresRedis(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "ERROR")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"watch"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_ADDR")
}

func TestRoot_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mysql")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"migrate"})

	require.Error(t, rootCmd.Execute())
}
