package healthendpoint

import (
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

// NewServer returns a runner serving the prometheus registry on /health and
// on the root path, for scrapers and load balancer checks alike.
func NewServer(logger lager.Logger, port int, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	metricsHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})

	r := mux.NewRouter()
	r.Handle("/health", metricsHandler)
	r.PathPrefix("/").Handler(metricsHandler)

	addr := fmt.Sprintf("0.0.0.0:%d", port)
	logger.Info("new-health-server", lager.Data{"addr": addr})
	return http_server.New(addr, r), nil
}
