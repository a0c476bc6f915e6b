package photos

import (
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOwners(t *testing.T) {
	eventID := uuid.New()
	clubID := uuid.New()

	assert.ErrorIs(t, ValidateOwners(nil, nil), ErrNoOwner)
	assert.NoError(t, ValidateOwners(&eventID, nil))
	assert.NoError(t, ValidateOwners(nil, &clubID))
	assert.NoError(t, ValidateOwners(&eventID, &clubID), "a photo may belong to both")
}

func TestParseOwnerID(t *testing.T) {
	id, err := ParseOwnerID("")
	require.NoError(t, err)
	assert.Nil(t, id, "empty value means no owner of that kind")

	want := uuid.New()
	id, err = ParseOwnerID(want.String())
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, want, *id)

	_, err = ParseOwnerID("not-a-uuid")
	assert.Error(t, err)
}

func TestOversizedFiles(t *testing.T) {
	atCeiling := &multipart.FileHeader{Filename: "ok.jpg", Size: MaxPhotoFileSize}
	overCeiling := &multipart.FileHeader{Filename: "huge.jpg", Size: MaxPhotoFileSize + 1}
	small := &multipart.FileHeader{Filename: "small.jpg", Size: 1024}

	assert.Empty(t, oversizedFiles([]*multipart.FileHeader{atCeiling, small}),
		"the ceiling is inclusive, only each file's size matters, not the batch total")
	assert.Equal(t, []string{"huge.jpg"},
		oversizedFiles([]*multipart.FileHeader{small, overCeiling, atCeiling}))
}

func TestSameID(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	aCopy := a

	assert.True(t, sameID(nil, nil))
	assert.True(t, sameID(&a, &aCopy))
	assert.False(t, sameID(&a, &b))
	assert.False(t, sameID(&a, nil))
	assert.False(t, sameID(nil, &b))
}
