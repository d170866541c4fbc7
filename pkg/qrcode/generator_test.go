package qrcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/qrcode"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	png, err := qrcode.Generate("otpauth://totp/SealPost:journalist?secret=ABC", 128)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestGenerateDefaultSize(t *testing.T) {
	t.Parallel()

	png, err := qrcode.Generate("otpauth://totp/SealPost:journalist?secret=ABC", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGenerateEmptyContent(t *testing.T) {
	t.Parallel()

	_, err := qrcode.Generate("", 128)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	_, err = qrcode.Generate("   ", 128)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	img, err := qrcode.GenerateBase64Image("otpauth://totp/SealPost:journalist?secret=ABC", 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img, "data:image/png;base64,"))
}
