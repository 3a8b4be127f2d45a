package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/news/:id", "404")
	before := testutil.ToFloat64(counter)

	RecordHTTPRequest(http.MethodGet, "/api/news/:id", http.StatusNotFound, 3*time.Millisecond, 52)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSetArticlesTotal(t *testing.T) {
	SetArticlesTotal(5)
	assert.Equal(t, float64(5), testutil.ToFloat64(ArticlesTotal))

	SetArticlesTotal(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(ArticlesTotal))
}

func TestRecordArticleLookup(t *testing.T) {
	found := ArticleLookupsTotal.WithLabelValues("found")
	notFound := ArticleLookupsTotal.WithLabelValues("not_found")
	beforeFound := testutil.ToFloat64(found)
	beforeNotFound := testutil.ToFloat64(notFound)

	RecordArticleLookup(true)
	RecordArticleLookup(false)
	RecordArticleLookup(false)

	assert.Equal(t, beforeFound+1, testutil.ToFloat64(found))
	assert.Equal(t, beforeNotFound+2, testutil.ToFloat64(notFound))
}

func TestRecordPanicRecovered(t *testing.T) {
	before := testutil.ToFloat64(PanicsRecoveredTotal)
	RecordPanicRecovered()
	assert.Equal(t, before+1, testutil.ToFloat64(PanicsRecoveredTotal))
}
