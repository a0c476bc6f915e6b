package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte("fake image bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	decoded, err := DecodeBase64Image(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	withPrefix, err := DecodeBase64Image("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, withPrefix)

	_, err = DecodeBase64Image("!!not base64!!")
	assert.Error(t, err)
}

func TestSaveBase64ImageWritesUnderUploadDir(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png bytes"))
	fullPath, err := SaveBase64Image(payload, filepath.Join("clubs", "chess.png"))
	require.NoError(t, err)

	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestDeleteStoredFileToleratesMissingFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	assert.NoError(t, DeleteStoredFile("photos/never-existed.jpg"))
}

func TestDeleteStoredFileRemovesExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "photos"), 0o755))
	path := filepath.Join(dir, "photos", "gone.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, DeleteStoredFile("photos/gone.jpg"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUniqueFileName(t *testing.T) {
	name := UniqueFileName("banner.png")
	assert.True(t, strings.HasPrefix(name, "banner_"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotEqual(t, "banner.png", name)
}

func TestPublicURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.campus.edu/")
	assert.Equal(t, "https://api.campus.edu/uploads/clubs/chess.png", PublicURL("clubs/chess.png"))
}
