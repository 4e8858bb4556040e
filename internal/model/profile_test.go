package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilePatch_Empty(t *testing.T) {
	assert.True(t, ProfilePatch{}.Empty())

	name := "Priya"
	assert.False(t, ProfilePatch{DisplayName: &name}.Empty())

	blank := ""
	// An explicitly empty string is still a patch field.
	assert.False(t, ProfilePatch{District: &blank}.Empty())
}

func TestProfilePatch_BindDistinguishesAbsentFromEmpty(t *testing.T) {
	var p ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"9876543210","address":""}`), &p))

	require.NotNil(t, p.Phone)
	assert.Equal(t, "9876543210", *p.Phone)
	require.NotNil(t, p.Address)
	assert.Equal(t, "", *p.Address)
	assert.Nil(t, p.DisplayName)
}

func TestSession_ProfileNullWhenMissing(t *testing.T) {
	b, err := json.Marshal(Session{User: User{ID: 7, Email: "x@y.in"}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"profile":null`)
}
