package scim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.1")
	require.NoError(t, err)
	assert.Equal(t, V11, v)

	v, err = ParseVersion("2.0")
	require.NoError(t, err)
	assert.Equal(t, V20, v)

	_, err = ParseVersion("3.0")
	assert.Error(t, err)

	_, err = ParseVersion("")
	assert.Error(t, err)
}

func TestVersionLabel(t *testing.T) {
	assert.Equal(t, "SCIM 2.0", V20.Label())
	assert.Equal(t, "SCIM 1.1", V11.Label())
}
