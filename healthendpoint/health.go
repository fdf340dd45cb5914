package healthendpoint

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

type Health interface {
	Set(name string, value float64)
	Inc(name string)
	Dec(name string)
}

type health struct {
	gauges map[string]prometheus.Gauge
	logger lager.Logger
}

func New(registrar prometheus.Registerer, gauges map[string]prometheus.Gauge, includeDefault bool, logger lager.Logger) Health {
	collectors := make([]prometheus.Collector, 0, len(gauges))
	for _, gauge := range gauges {
		collectors = append(collectors, gauge)
	}
	RegisterCollectors(registrar, collectors, includeDefault, logger)
	return &health{
		gauges: gauges,
		logger: logger,
	}
}

func (h *health) Set(name string, value float64) {
	gauge, exists := h.gauges[name]
	if !exists {
		h.logger.Error("unknown-gauge", nil, lager.Data{"name": name})
		return
	}
	gauge.Set(value)
}

func (h *health) Inc(name string) {
	gauge, exists := h.gauges[name]
	if !exists {
		h.logger.Error("unknown-gauge", nil, lager.Data{"name": name})
		return
	}
	gauge.Inc()
}

func (h *health) Dec(name string) {
	gauge, exists := h.gauges[name]
	if !exists {
		h.logger.Error("unknown-gauge", nil, lager.Data{"name": name})
		return
	}
	gauge.Dec()
}
