package rojo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDRoundTrip(t *testing.T) {
	id := NewSessionID()
	assert.NotEqual(t, SessionID{}, id)

	text, err := id.MarshalText()
	require.NoError(t, err)

	var parsed SessionID
	require.NoError(t, parsed.UnmarshalText(text))
	assert.Equal(t, id, parsed)
	assert.Equal(t, string(text), id.String())
}
