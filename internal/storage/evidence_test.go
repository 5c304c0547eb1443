package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Main_Quad", SanitizeName("Main Quad"))
	assert.Equal(t, "Zone-7.b", SanitizeName("Zone-7.b"))
	assert.Equal(t, "_.._.._etc_passwd", SanitizeName("/../../etc/passwd"))
	assert.Equal(t, "unnamed", SanitizeName(""))
	assert.Equal(t, "______", SanitizeName("корпус"))
}

func TestEvidenceStore_Save(t *testing.T) {
	// Подготовка
	dir := t.TempDir()
	store, err := NewEvidenceStore(dir)
	require.NoError(t, err)

	imageData := []byte("fake jpeg bytes")

	// Действие
	path, err := store.Save(bytes.NewReader(imageData), "Library Entrance")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Library_Entrance_"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, imageData, written)
}

func TestEvidenceStore_Save_UniquePaths(t *testing.T) {
	// Подготовка
	store, err := NewEvidenceStore(t.TempDir())
	require.NoError(t, err)

	// Действие: две загрузки для одной локации в одну и ту же секунду
	first, err := store.Save(bytes.NewReader([]byte("a")), "Main Quad")
	require.NoError(t, err)
	second, err := store.Save(bytes.NewReader([]byte("b")), "Main Quad")
	require.NoError(t, err)

	// Проверки: пути не совпадают благодаря uuid-суффиксу
	assert.NotEqual(t, first, second)
}

func TestNewEvidenceStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewEvidenceStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
