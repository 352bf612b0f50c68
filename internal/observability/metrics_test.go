package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherFamily(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func metricWithLabel(family *dto.MetricFamily, label, value string) *dto.Metric {
	if family == nil {
		return nil
	}
	for _, metric := range family.Metric {
		for _, pair := range metric.Label {
			if pair.GetName() == label && pair.GetValue() == value {
				return metric
			}
		}
	}
	return nil
}

func TestRecordSignupCountsAndTracksEnrollment(t *testing.T) {
	RecordSignup("Metrics Test Club", 3)
	RecordSignup("Metrics Test Club", 4)

	counters := gatherFamily(t, "enrollment_registry_signups_total")
	metric := metricWithLabel(counters, "activity", "Metrics Test Club")
	require.NotNil(t, metric)
	assert.Equal(t, float64(2), metric.GetCounter().GetValue())

	gauges := gatherFamily(t, "enrollment_registry_participants")
	gauge := metricWithLabel(gauges, "activity", "Metrics Test Club")
	require.NotNil(t, gauge)
	assert.Equal(t, float64(4), gauge.GetGauge().GetValue())
}

func TestRecordUnregistrationLowersEnrollment(t *testing.T) {
	RecordSignup("Metrics Drain Club", 1)
	RecordUnregistration("Metrics Drain Club", 0)

	counters := gatherFamily(t, "enrollment_registry_unregistrations_total")
	metric := metricWithLabel(counters, "activity", "Metrics Drain Club")
	require.NotNil(t, metric)
	assert.Equal(t, float64(1), metric.GetCounter().GetValue())

	gauges := gatherFamily(t, "enrollment_registry_participants")
	gauge := metricWithLabel(gauges, "activity", "Metrics Drain Club")
	require.NotNil(t, gauge)
	assert.Equal(t, float64(0), gauge.GetGauge().GetValue())
}

func TestRecordRejectionByReason(t *testing.T) {
	RecordRejection("metrics_test_reason")

	counters := gatherFamily(t, "enrollment_registry_rejections_total")
	metric := metricWithLabel(counters, "reason", "metrics_test_reason")
	require.NotNil(t, metric)
	assert.Equal(t, float64(1), metric.GetCounter().GetValue())
}

func TestSetParticipantsSeedsGauge(t *testing.T) {
	SetParticipants("Metrics Seed Club", 12)

	gauges := gatherFamily(t, "enrollment_registry_participants")
	gauge := metricWithLabel(gauges, "activity", "Metrics Seed Club")
	require.NotNil(t, gauge)
	assert.Equal(t, float64(12), gauge.GetGauge().GetValue())
}
