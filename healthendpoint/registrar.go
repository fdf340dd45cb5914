package healthendpoint

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterCollectors registers the service's collectors, optionally with the
// default process and go runtime collectors. Registration failures are
// logged, not fatal.
func RegisterCollectors(registrar prometheus.Registerer, collectors []prometheus.Collector, includeDefault bool, logger lager.Logger) {
	if includeDefault {
		collectors = append([]prometheus.Collector{
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			prometheus.NewGoCollector(),
		}, collectors...)
	}

	for _, c := range collectors {
		if err := registrar.Register(c); err != nil {
			logger.Error("failed-to-register-collector", err, lager.Data{"collector": c})
		}
	}
}
