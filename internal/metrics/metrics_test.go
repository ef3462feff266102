package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRefreshBatch(t *testing.T) {
	success := testutil.ToFloat64(RefreshTotal.WithLabelValues("success"))
	failure := testutil.ToFloat64(RefreshTotal.WithLabelValues("failure"))

	RecordRefreshBatch(3, 1, 0.5)

	assert.Equal(t, success+3, testutil.ToFloat64(RefreshTotal.WithLabelValues("success")))
	assert.Equal(t, failure+1, testutil.ToFloat64(RefreshTotal.WithLabelValues("failure")))
}

func TestRecordPrepare(t *testing.T) {
	before := testutil.ToFloat64(PrepareTotal.WithLabelValues("no_content"))

	RecordPrepare("no_content")

	assert.Equal(t, before+1, testutil.ToFloat64(PrepareTotal.WithLabelValues("no_content")))
}

func TestRecordSweep(t *testing.T) {
	before := testutil.ToFloat64(JanitorRemoved.WithLabelValues("orphan_article"))

	RecordSweep(4, 0)

	assert.Equal(t, before+4, testutil.ToFloat64(JanitorRemoved.WithLabelValues("orphan_article")))
}

func TestRecordNewsletter(t *testing.T) {
	before := testutil.ToFloat64(NewslettersRecorded.WithLabelValues("duplicate"))

	RecordNewsletter("duplicate")

	assert.Equal(t, before+1, testutil.ToFloat64(NewslettersRecorded.WithLabelValues("duplicate")))
}
