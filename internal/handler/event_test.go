package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

func TestParseEventDate(t *testing.T) {
	got, err := parseEventDate("2025-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseEventDate("2025-09-01T14:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC), got)

	_, err = parseEventDate("01/09/2025")
	assert.Error(t, err)
	_, err = parseEventDate("")
	assert.Error(t, err)
}

func TestEventReqValidate(t *testing.T) {
	r := eventReq{Title: "  Camp  ", Date: "2025-09-01"}
	assert.Empty(t, r.validate())
	assert.Equal(t, "Camp", r.Title)
	assert.Equal(t, model.EventUpcoming, r.Status) // defaulted

	r = eventReq{Date: "2025-09-01"}
	assert.Contains(t, r.validate(), "title")

	r = eventReq{Title: "Camp", Date: "soon"}
	assert.Contains(t, r.validate(), "date")

	r = eventReq{Title: "Camp", Date: "2025-09-01", Status: "done"}
	assert.Contains(t, r.validate(), "status")
}
