package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

func TestMemberReqValidate(t *testing.T) {
	r := memberReq{Name: "  Meera  ", Phone: "9876543210", JoinedDate: "2024-01-15"}
	assert.Empty(t, r.validate())
	assert.Equal(t, "Meera", r.Name)
	assert.Equal(t, model.MemberRoleGeneral, r.Role) // defaulted

	r = memberReq{Phone: "9876543210", JoinedDate: "2024-01-15"}
	assert.Contains(t, r.validate(), "name")

	r = memberReq{Name: "Meera", Phone: "123", JoinedDate: "2024-01-15"}
	assert.Contains(t, r.validate(), "phone")

	r = memberReq{Name: "Meera", Phone: "9876543210", Role: "boss", JoinedDate: "2024-01-15"}
	assert.Contains(t, r.validate(), "role")

	r = memberReq{Name: "Meera", Phone: "9876543210", JoinedDate: "15-01-2024"}
	assert.Contains(t, r.validate(), "joined_date")
}

func TestMemberList_RejectsUnknownRole(t *testing.T) {
	h := &MemberHandler{}
	c, rec := newJSONCtx(http.MethodGet, "/v1/members?role=boss", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMemberGet_RejectsBadID(t *testing.T) {
	h := &MemberHandler{}
	c, rec := newJSONCtx(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
