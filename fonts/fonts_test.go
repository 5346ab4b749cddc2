package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(14))

	face := Regular.Get()
	require.NotNil(t, face)
	assert.Positive(t, face.Metrics().Ascent.Ceil())
	assert.NotNil(t, Bold.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
