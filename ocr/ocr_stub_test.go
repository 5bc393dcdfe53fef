//go:build !ocr

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutOCR(t *testing.T) {
	client, err := New()
	require.ErrorIs(t, err, ErrOCRNotEnabled)
	assert.Nil(t, client)
	assert.False(t, Enabled)
}

func TestNilClientClose(t *testing.T) {
	var client *Client
	assert.NoError(t, client.Close())
}

func TestStubCallsFail(t *testing.T) {
	client := &Client{}
	_, err := client.Recognize([]byte{0x89, 'P', 'N', 'G'})
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
	assert.ErrorIs(t, client.SetLanguage("eng"), ErrOCRNotEnabled)
}
