package columnfamily

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// opCounter counts requests per family and operation. Exposed through the
// process-wide metrics set; callers embedding this library decide where the
// set gets scraped or written.
func opCounter(family, op string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`widerow_requests_total{family=%q,op=%q}`, family, op))
}
