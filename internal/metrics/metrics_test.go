package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPreferenceCreated(t *testing.T) {
	before := testutil.ToFloat64(PreferencesCreatedTotal.WithLabelValues("gold", "pix"))
	RecordPreferenceCreated("gold", "pix")
	after := testutil.ToFloat64(PreferencesCreatedTotal.WithLabelValues("gold", "pix"))

	assert.Equal(t, before+1, after)
}

func TestRecordPreferenceFailure(t *testing.T) {
	before := testutil.ToFloat64(PreferenceFailuresTotal)
	RecordPreferenceFailure()
	after := testutil.ToFloat64(PreferenceFailuresTotal)

	assert.Equal(t, before+1, after)
}

func TestRecordWebhookEvent(t *testing.T) {
	before := testutil.ToFloat64(WebhookEventsTotal.WithLabelValues("ignored"))
	RecordWebhookEvent("ignored")
	after := testutil.ToFloat64(WebhookEventsTotal.WithLabelValues("ignored"))

	assert.Equal(t, before+1, after)
}

func TestRecordSubscriptionActivated(t *testing.T) {
	before := testutil.ToFloat64(SubscriptionsActivatedTotal.WithLabelValues("silver"))
	RecordSubscriptionActivated("silver")
	after := testutil.ToFloat64(SubscriptionsActivatedTotal.WithLabelValues("silver"))

	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/webhook", "200"))
	RecordHTTPRequest("POST", "/api/webhook", "200", 0.042)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/webhook", "200"))

	assert.Equal(t, before+1, after)
}
