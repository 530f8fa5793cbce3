package machineid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreatePersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app", "data")

	id, err := GetOrCreate(dir)
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	again, err := GetOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestGetOrCreateKeepsExistingTrimmed(t *testing.T) {
	dir := t.TempDir()
	existing := "123e4567-e89b-12d3-a456-426614174000"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("  "+existing+"\n"), 0644))

	id, err := GetOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, existing, id)
}

func TestGetOrCreateReplacesInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("not-a-uuid"), 0644))

	id, err := GetOrCreate(dir)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", id)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, id, string(stored))
}

func TestGetOrCreateRequiresDir(t *testing.T) {
	_, err := GetOrCreate("")
	assert.ErrorIs(t, err, ErrDirRequired)
}
