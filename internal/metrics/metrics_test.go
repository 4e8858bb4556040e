package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest_CountsByLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/v1/members", 200)
	c.RecordRequest(http.MethodGet, "/v1/members", 200)
	c.RecordRequest(http.MethodPost, "/v1/members", 201)

	fams, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range fams {
		if mf.GetName() != "portal_http_requests_total" {
			continue
		}
		found = true
		assert.Len(t, mf.GetMetric(), 2)
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			switch labels["method"] {
			case http.MethodGet:
				assert.Equal(t, "200", labels["status"])
				assert.Equal(t, float64(2), m.GetCounter().GetValue())
			case http.MethodPost:
				assert.Equal(t, "201", labels["status"])
				assert.Equal(t, float64(1), m.GetCounter().GetValue())
			}
		}
	}
	assert.True(t, found, "portal_http_requests_total not gathered")
}

func TestRecordLatency_Observes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLatency(25 * time.Millisecond)

	fams, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range fams {
		if mf.GetName() == "portal_http_request_duration_seconds" {
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, uint64(1), mf.GetMetric()[0].GetHistogram().GetSampleCount())
			return
		}
	}
	t.Fatal("portal_http_request_duration_seconds not gathered")
}

func TestHandler_ServesTextFormat(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRequest(http.MethodGet, "/healthz", 200)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "portal_http_requests_total")
}
