package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe_Unauthenticated(t *testing.T) {
	h := &ProfileHandler{}
	c, rec := newJSONCtx(http.MethodGet, "/v1/me", "")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_Unauthenticated(t *testing.T) {
	h := &ProfileHandler{}
	c, rec := newJSONCtx(http.MethodPatch, "/v1/profile", `{"district":"Pune"}`)
	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_RejectsBadPatch(t *testing.T) {
	h := &ProfileHandler{}
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty patch", `{}`, "no fields to update"},
		{"bad phone", `{"phone":"12345"}`, "invalid phone number"},
		{"blank display name", `{"display_name":""}`, "display_name cannot be empty"},
		{"bad join date", `{"join_date":"12-05-2024"}`, "join_date must be YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONCtx(http.MethodPatch, "/v1/profile", tc.body)
			c.Set("user_id", uint64(7))
			require.NoError(t, h.UpdateProfile(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}
