package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MigratesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.db")

	db, err := New(path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'players'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "players", name)

	// migrating twice is harmless
	db.Close()
	db, err = New(path)
	require.NoError(t, err)
	db.Close()
}
