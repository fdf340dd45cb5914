package healthendpoint

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type ConvergenceCollector interface {
	prometheus.Collector
	IncConcurrentConvergence()
	DecConcurrentConvergence()
}

type convergenceCollector struct {
	namespace             string
	subsystem             string
	lock                  sync.Mutex
	concurrentConvergence int64
}

func NewConvergenceCollector(namespace string, subsystem string) ConvergenceCollector {
	return &convergenceCollector{
		namespace: namespace,
		subsystem: subsystem,
	}
}

func (c *convergenceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc()
}

func (c *convergenceCollector) Collect(ch chan<- prometheus.Metric) {
	c.lock.Lock()
	value := c.concurrentConvergence
	c.lock.Unlock()
	metric, err := prometheus.NewConstMetric(c.desc(), prometheus.GaugeValue, float64(value))
	if err == nil {
		ch <- metric
	}
}

func (c *convergenceCollector) IncConcurrentConvergence() {
	c.lock.Lock()
	c.concurrentConvergence++
	c.lock.Unlock()
}

func (c *convergenceCollector) DecConcurrentConvergence() {
	c.lock.Lock()
	c.concurrentConvergence--
	c.lock.Unlock()
}

func (c *convergenceCollector) desc() *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName(c.namespace, c.subsystem, "concurrent_convergence"),
		"Number of convergence passes in flight",
		nil, nil,
	)
}
