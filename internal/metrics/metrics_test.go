package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	c := NewCollector()

	c.RecordReview("success")
	c.RecordReview("success")
	c.RecordReview("failure")
	c.RecordProviderCall("openai", "ok", 1200*time.Millisecond)
	c.RecordError("provider_timeout")
	c.RecordCacheEvent("hit")
	c.RecordStage("call_llm", 2*time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.reviewsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.reviewsTotal.WithLabelValues("failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.providerRequests.WithLabelValues("openai", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.errorsTotal.WithLabelValues("provider_timeout")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.cacheEvents.WithLabelValues("hit")))
}

func TestCollectorsDoNotShareRegistries(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	a.RecordReview("success")

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			assert.Zero(t, m.GetCounter().GetValue())
		}
	}
}
