package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAssociation(t *testing.T) {
	before := testutil.ToFloat64(associationCounter.WithLabelValues(OperationAddTag, "conflict"))

	RecordAssociation(OperationAddTag, "conflict")
	RecordAssociation(OperationAddTag, "conflict")

	after := testutil.ToFloat64(associationCounter.WithLabelValues(OperationAddTag, "conflict"))
	assert.Equal(t, before+2, after)
}

func TestRecordAuditCleanup(t *testing.T) {
	before := testutil.ToFloat64(auditCleanupCounter)
	now := time.Unix(1_700_000_000, 0)

	RecordAuditCleanup(3, now)
	RecordAuditCleanup(0, time.Time{})

	assert.Equal(t, before+3, testutil.ToFloat64(auditCleanupCounter))
	assert.Equal(t, float64(now.Unix()), testutil.ToFloat64(lastCleanupGauge))
}
