package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_WellFormed(t *testing.T) {
	entries, err := os.ReadDir(testMigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		t.Run(e.Name(), func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join(testMigrationsDir, e.Name()))
			require.NoError(t, err)

			sql := string(content)
			assert.Contains(t, sql, "-- +goose Up")
			assert.Contains(t, sql, "-- +goose Down")
			assert.Less(t, strings.Index(sql, "-- +goose Up"), strings.Index(sql, "-- +goose Down"))
		})
	}
}

func TestMigrations_CoverStampedTables(t *testing.T) {
	var all strings.Builder
	entries, err := os.ReadDir(testMigrationsDir)
	require.NoError(t, err)
	for _, e := range entries {
		content, err := os.ReadFile(filepath.Join(testMigrationsDir, e.Name()))
		require.NoError(t, err)
		all.Write(content)
	}

	assert.Contains(t, all.String(), "info_rowid")
	assert.Contains(t, all.String(), "build_version")
	assert.Contains(t, all.String(), "strftime('%s','now')")
}
