package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB_InMemory(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNewSQLiteDB_FileIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.db")

	db, err := NewSQLiteDB(path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO posts (id, title) VALUES ('p1', 'kept')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewSQLiteDB(path)
	require.NoError(t, err)
	defer db.Close()

	var title, body string
	err = db.QueryRow(`SELECT title, body FROM posts WHERE id = 'p1'`).Scan(&title, &body)
	require.NoError(t, err)
	assert.Equal(t, "kept", title)
	assert.Equal(t, "", body)
}
