package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,aW1hZ2U="))
	assert.False(t, IsDataURI("https://example.com/photo.png"))
	assert.False(t, IsDataURI("data:image/png,not-base64-encoded"))
	assert.False(t, IsDataURI(""))
}

func TestDecodeDataURI(t *testing.T) {
	data, ext, err := decodeDataURI("data:image/png;base64,aW1hZ2UtYnl0ZXM=")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
	assert.Equal(t, "png", ext)

	_, ext, err = decodeDataURI("data:application/octet-stream;base64,aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "bin", ext)

	_, _, err = decodeDataURI("https://example.com/photo.png")
	assert.Error(t, err)

	_, _, err = decodeDataURI("data:image/png;base64,%%%not-base64%%%")
	assert.Error(t, err)
}

func TestPassthrough(t *testing.T) {
	uri := "data:image/png;base64,aW1hZ2U="
	out, err := Passthrough{}.Upload(context.Background(), "profiles", uri)
	require.NoError(t, err)
	assert.Equal(t, uri, out)
}
