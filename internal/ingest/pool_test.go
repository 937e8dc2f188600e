package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tomb "gopkg.in/tomb.v2"

	"lob/internal/book"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPool_IngestsMultipleFilesConcurrently(t *testing.T) {
	dir := t.TempDir()
	b := book.New(book.Config{AssetName: "AAPL"})

	fileA := writeTempFile(t, dir, "a.csv", "bid,1,100,10\n")
	fileB := writeTempFile(t, dir, "b.csv", "ask,1,110,5\n")

	pool := NewPool(2)
	pool.AddJob(FileJob{Path: fileA, LineFormat: DefaultLineFormat, Book: b})
	pool.AddJob(FileJob{Path: fileB, LineFormat: DefaultLineFormat, Book: b})
	pool.Close()

	var t_ tomb.Tomb
	ids, err := pool.Run(&t_)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, int64(100), bid.Price)

	ask, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, int64(110), ask.Price)
}

func TestPool_MissingFileIsReportedNotFatalToOthers(t *testing.T) {
	dir := t.TempDir()
	b := book.New(book.Config{AssetName: "AAPL"})

	fileA := writeTempFile(t, dir, "a.csv", "bid,1,100,10\n")

	pool := NewPool(2)
	pool.AddJob(FileJob{Path: fileA, LineFormat: DefaultLineFormat, Book: b})
	pool.AddJob(FileJob{Path: filepath.Join(dir, "missing.csv"), LineFormat: DefaultLineFormat, Book: b})
	pool.Close()

	var t_ tomb.Tomb
	ids, err := pool.Run(&t_)
	assert.Error(t, err)
	assert.Len(t, ids, 1)
}
