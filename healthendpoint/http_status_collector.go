package healthendpoint

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPStatusCollector interface {
	prometheus.Collector
	IncConcurrentHTTPRequest()
	DecConcurrentHTTPRequest()
}

type httpStatusCollector struct {
	namespace             string
	subsystem             string
	lock                  sync.Mutex
	concurrentHTTPRequest int64
}

func NewHTTPStatusCollector(namespace string, subsystem string) HTTPStatusCollector {
	return &httpStatusCollector{
		namespace: namespace,
		subsystem: subsystem,
	}
}

func (c *httpStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc()
}

func (c *httpStatusCollector) Collect(ch chan<- prometheus.Metric) {
	c.lock.Lock()
	value := c.concurrentHTTPRequest
	c.lock.Unlock()
	metric, err := prometheus.NewConstMetric(c.desc(), prometheus.GaugeValue, float64(value))
	if err == nil {
		ch <- metric
	}
}

func (c *httpStatusCollector) IncConcurrentHTTPRequest() {
	c.lock.Lock()
	c.concurrentHTTPRequest++
	c.lock.Unlock()
}

func (c *httpStatusCollector) DecConcurrentHTTPRequest() {
	c.lock.Lock()
	c.concurrentHTTPRequest--
	c.lock.Unlock()
}

func (c *httpStatusCollector) desc() *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName(c.namespace, c.subsystem, "concurrent_http_request"),
		"Number of concurrent http requests",
		nil, nil,
	)
}
