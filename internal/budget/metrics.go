package budget

import "github.com/prometheus/client_golang/prometheus"

// Results of a catalog lookup, used as label values for CatalogLoads.
const (
	loadHit       = "hit"
	loadParsed    = "parsed"
	loadMissing   = "missing"
	loadMalformed = "malformed"
	loadFailed    = "failed"
)

// CatalogLoads counts catalog lookups, partitioned by their result.
//
// It is not registered with any registry by this package.
var CatalogLoads = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_catalog_loads_total",
		Help: "How many budget catalog lookups were made, partitioned by result.",
	},
	[]string{"result"},
)
