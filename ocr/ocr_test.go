//go:build ocr

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndClose(t *testing.T) {
	client, err := New()
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.True(t, Enabled)
	assert.NoError(t, client.SetLanguage("eng"))
	assert.NoError(t, client.Close())
}

func TestRecognizeRejectsGarbage(t *testing.T) {
	client, err := New()
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Recognize([]byte("not an image"))
	assert.Error(t, err)
}
