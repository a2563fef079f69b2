package services

import (
	"context"
	"escritorio_app_go/config"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()
	storage := NewLocalStorage(tempDir)
	ctx := context.Background()
	content := "hello storage"
	key := "backups/file.txt"

	t.Run("Put creates file", func(t *testing.T) {
		result, err := storage.Put(ctx, key, strings.NewReader(content), "text/plain", int64(len(content)))
		require.NoError(t, err)
		assert.Equal(t, key, result.Key)
		assert.Equal(t, "file.txt", result.FileName)
		assert.Equal(t, int64(len(content)), result.FileSize)

		assert.FileExists(t, filepath.Join(tempDir, key))
	})

	t.Run("Get retrieves file content", func(t *testing.T) {
		reader, contentType, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, content, string(got))
		assert.Equal(t, "text/plain; charset=utf-8", contentType)
	})

	t.Run("Get detects workbooks", func(t *testing.T) {
		_, err := storage.Put(ctx, "backups/b.xlsx", strings.NewReader("PK"), XLSXContentType, 2)
		require.NoError(t, err)

		reader, contentType, err := storage.Get(ctx, "backups/b.xlsx")
		require.NoError(t, err)
		reader.Close()
		assert.Equal(t, XLSXContentType, contentType)
	})

	t.Run("Keys cannot escape the base dir", func(t *testing.T) {
		_, err := storage.Put(ctx, "../../escape.txt", strings.NewReader("x"), "text/plain", 1)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(tempDir, "escape.txt"))

		_, err = storage.Put(ctx, "", strings.NewReader("x"), "text/plain", 1)
		assert.Error(t, err)
	})

	t.Run("Get missing file", func(t *testing.T) {
		_, _, err := storage.Get(ctx, "backups/missing.xlsx")
		assert.Error(t, err)
	})

	assert.True(t, storage.IsConfigured())
}

func TestInitializeStorageFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{BackupDir: t.TempDir()}

	InitializeStorage(cfg)

	_, ok := Storage.(*LocalStorage)
	assert.True(t, ok)
}

func TestBackupKey(t *testing.T) {
	ts := time.Date(2025, 6, 20, 9, 3, 7, 0, time.UTC)

	assert.Equal(t, "backup_processos_20250620_090307.xlsx", BackupFilename(ts))
	assert.Equal(t, "backups/backup_processos_20250620_090307.xlsx", BackupKey(ts))
}
