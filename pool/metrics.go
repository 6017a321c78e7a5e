package pool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkngwrapper/displaypool/resource"
)

// Collector exports the usage of a pool as prometheus metrics
type Collector struct {
	pool *Pool

	resources *prometheus.Desc
	inUse     *prometheus.Desc
	claims    *prometheus.Desc

	acquireAttempts    *prometheus.Desc
	acquireFailures    *prometheus.Desc
	releases           *prometheus.Desc
	contractViolations *prometheus.Desc
}

var _ prometheus.Collector = &Collector{}

// NewCollector creates a collector for the pool. constLabels are attached to every metric, which is
// how pools of several adapters are told apart.
func NewCollector(pool *Pool, namespace string, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string, variableLabels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "display_resources", name), help, variableLabels, constLabels)
	}

	return &Collector{
		pool: pool,

		resources: desc("total", "Number of display resources in the pool.", "kind"),
		inUse:     desc("in_use", "Number of display resources with at least one claim.", "kind"),
		claims:    desc("claims", "Sum of the reference counts of display resources.", "kind"),

		acquireAttempts:    desc("acquire_attempts_total", "Number of display path acquisitions attempted."),
		acquireFailures:    desc("acquire_failures_total", "Number of display path acquisitions that failed."),
		releases:           desc("releases_total", "Number of display path releases that returned resources."),
		contractViolations: desc("contract_violations_total", "Number of unbalanced or otherwise invalid calls reported by the pool."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.resources
	ch <- c.inUse
	ch <- c.claims
	ch <- c.acquireAttempts
	ch <- c.acquireFailures
	ch <- c.releases
	ch <- c.contractViolations
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	var stats Statistics
	c.pool.CalculateStatistics(&stats)

	for _, kind := range resource.Kinds {
		kindStats := &stats.Kinds[kind]
		ch <- prometheus.MustNewConstMetric(c.resources, prometheus.GaugeValue, float64(kindStats.Total), kind.String())
		ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(kindStats.InUse), kind.String())
		ch <- prometheus.MustNewConstMetric(c.claims, prometheus.GaugeValue, float64(kindStats.Claims), kind.String())
	}

	ch <- prometheus.MustNewConstMetric(c.acquireAttempts, prometheus.CounterValue, float64(stats.Transactions.AcquireAttempts))
	ch <- prometheus.MustNewConstMetric(c.acquireFailures, prometheus.CounterValue, float64(stats.Transactions.AcquireFailures))
	ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(stats.Transactions.Releases))
	ch <- prometheus.MustNewConstMetric(c.contractViolations, prometheus.CounterValue, float64(stats.Transactions.ContractViolations))
}
